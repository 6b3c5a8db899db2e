package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/flarexio/consultant/llm"
)

const (
	// Defaults target a local Ollama instance through its
	// OpenAI-compatible endpoint.
	defaultModel   = "phi3:mini"
	defaultBaseURL = "http://localhost:11434/v1"
	defaultAPIKey  = "ollama" // Ollama accepts any key
)

func NewGenerator(cfg llm.Config) llm.Generator {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.APIKey == "" {
		cfg.APIKey = defaultAPIKey
	}

	client := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
	)

	return &generator{
		cfg:    cfg,
		client: client,
	}
}

type generator struct {
	cfg    llm.Config
	client openai.Client
}

func (g *generator) Generate(ctx context.Context, prompt string) (string, error) {
	if timeout := g.cfg.Timeout.Duration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", llm.ErrUpstreamTimeout
		}

		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", llm.ErrEmptyCompletion
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
