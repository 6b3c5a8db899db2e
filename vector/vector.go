package vector

import (
	"context"
	"errors"
)

var ErrUnsupportedEmbeddingProvider = errors.New("unsupported embedding provider")

type Config struct {
	Persistent bool            `yaml:"persistent"`
	Path       string          `yaml:"path"`
	Collection string          `yaml:"collection"`
	Embedding  EmbeddingConfig `yaml:"embedding"`
}

type EmbeddingProvider string

const (
	EmbeddingProviderOllama EmbeddingProvider = "ollama"
	EmbeddingProviderOpenAI EmbeddingProvider = "openai"
)

type EmbeddingConfig struct {
	Provider EmbeddingProvider `yaml:"provider"`
	Model    string            `yaml:"model"`
	BaseURL  string            `yaml:"baseURL"`
	APIKey   string            `yaml:"apiKey"`
}

type VectorDB interface {
	Collection(name string) (Collection, error)
}

type Collection interface {
	AddDocuments(ctx context.Context, docs []Document) error
	Count() int
	Query(ctx context.Context, query string, k int) ([]Document, error)
}

type Document struct {
	ID         string            `json:"id"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Content    string            `json:"content"`
	Embedding  []float32         `json:"embedding,omitempty"`
	Similarity float32           `json:"similarity,omitempty"`
}
