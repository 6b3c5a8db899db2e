package chromem

import (
	"context"
	"runtime"

	"github.com/philippgille/chromem-go"

	"github.com/flarexio/consultant/vector"
)

const defaultOllamaEmbeddingModel = "nomic-embed-text"

func NewChromemVectorDB(cfg vector.Config) (vector.VectorDB, error) {
	var db *chromem.DB
	if !cfg.Persistent {
		db = chromem.NewDB()
	} else {
		d, err := chromem.NewPersistentDB(cfg.Path, false)
		if err != nil {
			return nil, err
		}

		db = d
	}

	embedding, err := embeddingFunc(cfg.Embedding)
	if err != nil {
		return nil, err
	}

	return &chromemVectorDB{
		db:        db,
		embedding: embedding,
	}, nil
}

func embeddingFunc(cfg vector.EmbeddingConfig) (chromem.EmbeddingFunc, error) {
	switch cfg.Provider {
	case vector.EmbeddingProviderOllama, "":
		model := cfg.Model
		if model == "" {
			model = defaultOllamaEmbeddingModel
		}

		return chromem.NewEmbeddingFuncOllama(model, cfg.BaseURL), nil

	case vector.EmbeddingProviderOpenAI:
		model := chromem.EmbeddingModelOpenAI(cfg.Model)
		if cfg.Model == "" {
			model = chromem.EmbeddingModelOpenAI3Small
		}

		return chromem.NewEmbeddingFuncOpenAI(cfg.APIKey, model), nil

	default:
		return nil, vector.ErrUnsupportedEmbeddingProvider
	}
}

type chromemVectorDB struct {
	db        *chromem.DB
	embedding chromem.EmbeddingFunc
}

func (v *chromemVectorDB) Collection(name string) (vector.Collection, error) {
	c, err := v.db.GetOrCreateCollection(name, nil, v.embedding)
	if err != nil {
		return nil, err
	}

	return &collection{c}, nil
}

type collection struct {
	collection *chromem.Collection
}

func (c *collection) AddDocuments(ctx context.Context, docs []vector.Document) error {
	documents := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		documents[i] = chromem.Document{
			ID:        doc.ID,
			Metadata:  doc.Metadata,
			Embedding: doc.Embedding,
			Content:   doc.Content,
		}
	}

	return c.collection.AddDocuments(ctx, documents, runtime.NumCPU())
}

func (c *collection) Count() int {
	return c.collection.Count()
}

func (c *collection) Query(ctx context.Context, query string, k int) ([]vector.Document, error) {
	if k > c.collection.Count() {
		k = c.collection.Count()
	}

	results, err := c.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, err
	}

	docs := make([]vector.Document, len(results))
	for i, result := range results {
		docs[i] = vector.Document{
			ID:         result.ID,
			Metadata:   result.Metadata,
			Embedding:  result.Embedding,
			Content:    result.Content,
			Similarity: result.Similarity,
		}
	}

	return docs, nil
}
