package knowledge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Splitter cuts documents into fixed-size windows of runes with a fixed
// overlap between consecutive windows.
type Splitter struct {
	chunkSize int
	overlap   int
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1
	}

	if overlap < 0 {
		overlap = 0
	}

	// The window must advance, otherwise splitting never terminates.
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}

	return &Splitter{
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

func (s *Splitter) Split(doc Document) []Chunk {
	runes := []rune(doc.Content)
	step := s.chunkSize - s.overlap

	var chunks []Chunk
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		content := strings.TrimSpace(string(runes[start:end]))
		if content == "" {
			continue
		}

		chunks = append(chunks, Chunk{
			ID:      chunkID(doc.Source, len(chunks), content),
			Content: content,
			Source:  doc.Source,
		})

		if end == len(runes) {
			break
		}
	}

	return chunks
}

func (s *Splitter) SplitAll(docs []Document) []Chunk {
	var chunks []Chunk
	for _, doc := range docs {
		chunks = append(chunks, s.Split(doc)...)
	}

	return chunks
}

func chunkID(source string, index int, content string) string {
	data := fmt.Sprintf("%s|%d|%s", source, index, content)

	hash := sha256.Sum256([]byte(data))
	return "chunk_" + hex.EncodeToString(hash[:12])
}
