package consultant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/flarexio/consultant/knowledge"
	"github.com/flarexio/consultant/llm"
	"github.com/flarexio/consultant/vector"
)

// Service defines the core logic of the consultant.
type Service interface {

	// Close gracefully shuts down the service.
	Close() error

	// Ask retrieves context for the question and generates a grounded answer.
	Ask(ctx context.Context, question string) (*Answer, error)
}

type ServiceMiddleware func(Service) Service

// NewService builds the knowledge index and returns a ready-to-serve
// service. Index construction is fail-fast: if splitting, embedding, or
// indexing fails, no Service is returned and the process must not accept
// traffic.
func NewService(ctx context.Context, cfg Config, docs []knowledge.Document, vectorDB vector.VectorDB, generator llm.Generator) (Service, error) {
	log := zap.L().With(
		zap.String("service", "consultant"),
	)

	if vectorDB == nil {
		return nil, ErrVectorDBNotSet
	}

	if generator == nil {
		return nil, ErrGeneratorNotSet
	}

	collection, err := vectorDB.Collection(cfg.Vector.Collection)
	if err != nil {
		return nil, err
	}

	svc := &service{
		cfg:        cfg,
		collection: collection,
		generator:  generator,
		log:        log,
	}

	if err := svc.buildIndex(ctx, docs); err != nil {
		return nil, err
	}

	return svc, nil
}

type service struct {
	cfg        Config
	collection vector.Collection
	generator  llm.Generator
	log        *zap.Logger
}

func (svc *service) buildIndex(ctx context.Context, docs []knowledge.Document) error {
	log := svc.log.With(
		zap.String("action", "build_index"),
	)

	size := svc.cfg.Chunking.Size
	if size <= 0 {
		size = DefaultChunkSize
	}

	overlap := svc.cfg.Chunking.Overlap
	if overlap <= 0 {
		overlap = DefaultChunkOverlap
	}

	splitter := knowledge.NewSplitter(size, overlap)
	chunks := splitter.SplitAll(docs)

	documents := make([]vector.Document, len(chunks))
	for i, chunk := range chunks {
		documents[i] = vector.Document{
			ID:      chunk.ID,
			Content: chunk.Content,
			Metadata: map[string]string{
				"source": chunk.Source,
			},
		}
	}

	if err := svc.collection.AddDocuments(ctx, documents); err != nil {
		return err
	}

	if svc.collection.Count() == 0 {
		return ErrEmptyIndex
	}

	log.Info("knowledge index built",
		zap.Int("documents", len(docs)),
		zap.Int("chunks", len(chunks)),
	)

	return nil
}

func (svc *service) Ask(ctx context.Context, question string) (*Answer, error) {
	if svc.collection == nil {
		return nil, ErrIndexNotReady
	}

	question = strings.TrimSpace(question)

	// An empty question has nothing to embed; the generator still runs,
	// against an empty context.
	var docs []vector.Document
	if question != "" {
		k := svc.cfg.Retrieval.TopK
		if k <= 0 {
			k = DefaultTopK
		}

		results, err := svc.collection.Query(ctx, question, k)
		if err != nil {
			return nil, err
		}

		docs = results
	}

	contexts := make([]string, len(docs))
	for i, doc := range docs {
		contexts[i] = doc.Content
	}

	source := strings.Join(contexts, SourceDelimiter)

	prompt := BuildPrompt(question, contexts)

	text, err := svc.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(text)

	if ContainsSentinel(answer) {
		return &Answer{
			Text:   AnswerNotFoundMessage,
			Source: SourceNotFoundMessage,
			Status: StatusContextNotFound,
		}, nil
	}

	return &Answer{
		Text:   answer,
		Source: source,
		Status: StatusAnsweredFromContext,
	}, nil
}

func (svc *service) Close() error {
	// The index lives in memory only; nothing to release.
	return nil
}
