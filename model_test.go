package consultant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/consultant/llm"
)

func TestContainsSentinel(t *testing.T) {
	assert := assert.New(t)

	// Both branches must be reachable: containment is a real check, not
	// a short-circuited boolean expression.
	detected := []string{
		"CONTEXT_NOT_FOUND",
		"context_not_found",
		"ConTEXT_NOT_FOUND",
		"I'm sorry, CONTEXT_NOT_FOUND.",
		"Context not found in the provided articles.",
	}

	for _, answer := range detected {
		assert.True(ContainsSentinel(answer), "expected sentinel in %q", answer)
	}

	missed := []string{
		"",
		"A sensible starting budget is between 300 and 1500 dollars per month.",
		"The context describes landing pages in detail.",
	}

	for _, answer := range missed {
		assert.False(ContainsSentinel(answer), "unexpected sentinel in %q", answer)
	}
}

func TestErrorDetail(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("vector index is not available", ErrorDetail(ErrIndexNotReady))
	assert.Equal("upstream model timed out", ErrorDetail(llm.ErrUpstreamTimeout))

	internal := errors.New("connection refused to 10.0.0.7:11434")
	detail := ErrorDetail(internal)
	assert.Equal("an error occurred while processing your request", detail)
	assert.NotContains(detail, "10.0.0.7", "internal error detail must not leak to callers")
}

func TestBuildPrompt(t *testing.T) {
	assert := assert.New(t)

	contexts := []string{
		"Google Ads is an auction-based advertising platform.",
		"A landing page is a standalone page built for a single campaign.",
	}

	prompt := BuildPrompt("What is a landing page?", contexts)

	assert.Contains(prompt, Sentinel)
	assert.Contains(prompt, "<context>")
	assert.Contains(prompt, contexts[0])
	assert.Contains(prompt, contexts[1])
	assert.Contains(prompt, "Question: What is a landing page?")
}

func TestConfigYAMLUnmarshal(t *testing.T) {
	assert := assert.New(t)

	input := `chunking:
  size: 400
  overlap: 40
retrieval:
  topK: 3
vector:
  collection: knowledge
  embedding:
    provider: ollama
    model: nomic-embed-text
llm:
  model: phi3:mini
  timeout: 30s`

	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(400, cfg.Chunking.Size)
	assert.Equal(40, cfg.Chunking.Overlap)
	assert.Equal(3, cfg.Retrieval.TopK)
	assert.Equal("knowledge", cfg.Vector.Collection)
	assert.Equal("nomic-embed-text", cfg.Vector.Embedding.Model)
	assert.Equal("phi3:mini", cfg.LLM.Model)
	assert.Equal("30s", cfg.LLM.Timeout.Duration().String())
}
