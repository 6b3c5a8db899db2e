package consultant

import (
	"errors"
	"strings"

	"github.com/flarexio/consultant/llm"
	"github.com/flarexio/consultant/vector"
)

var (
	ErrIndexNotReady   = errors.New("vector index is not ready")
	ErrVectorDBNotSet  = errors.New("vector database not set")
	ErrGeneratorNotSet = errors.New("generator not set")
	ErrEmptyIndex      = errors.New("knowledge index is empty")
)

const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	DefaultTopK         = 2
)

type Config struct {
	Chunking  ChunkingConfig  `yaml:"chunking"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Vector    vector.Config   `yaml:"vector"`
	LLM       llm.Config      `yaml:"llm"`
}

type ChunkingConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

type RetrievalConfig struct {
	TopK int `yaml:"topK"`
}

// Status reports whether the answer was grounded in retrieved context.
type Status string

const (
	StatusAnsweredFromContext Status = "ANSWERED_FROM_CONTEXT"
	StatusContextNotFound     Status = "CONTEXT_NOT_FOUND"
)

type Answer struct {
	Text   string `json:"answer"`
	Source string `json:"source"`
	Status Status `json:"status"`
}

// Sentinel is the token the model is instructed to emit when the
// retrieved context does not contain the answer.
const Sentinel = "CONTEXT_NOT_FOUND"

const (
	AnswerNotFoundMessage = "I could not find an answer to your question in the provided marketing articles."
	SourceNotFoundMessage = "No relevant context found."

	SourceDelimiter = "\n---\n"
)

// ErrorDetail maps an internal error to the fixed detail message
// surfaced to callers. Internal error text never leaves the process.
func ErrorDetail(err error) string {
	switch {
	case errors.Is(err, ErrIndexNotReady):
		return "vector index is not available"

	case errors.Is(err, llm.ErrUpstreamTimeout):
		return "upstream model timed out"

	default:
		return "an error occurred while processing your request"
	}
}

// Models occasionally spell the sentinel with spaces instead of
// underscores. Casing is normalized before matching.
var sentinelSpellings = []string{
	"CONTEXT_NOT_FOUND",
	"CONTEXT NOT FOUND",
}

func ContainsSentinel(answer string) bool {
	upper := strings.ToUpper(answer)

	for _, spelling := range sentinelSpellings {
		if strings.Contains(upper, spelling) {
			return true
		}
	}

	return false
}

func BuildPrompt(question string, contexts []string) string {
	var sb strings.Builder

	sb.WriteString("Answer the user's question based strictly and exclusively on the provided context.\n")
	sb.WriteString("If the context does not contain the information needed to answer, reply with exactly ")
	sb.WriteString(Sentinel)
	sb.WriteString(" and nothing else.\n\n")

	sb.WriteString("<context>\n")
	for _, text := range contexts {
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	sb.WriteString("</context>\n\n")

	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n")

	return sb.String()
}
