// Package llm sends review prompts to a hosted language model and interprets the reply.
package llm

import (
	"context"
	"fmt"

	"github.com/irahardianto/aireview/internal/engine/config"
)

// Completer abstracts LLM API interaction for testability.
type Completer interface {
	// Complete sends prompt as a single user message and returns the first
	// completion's text, trimmed. An empty completion yields "" and no error.
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter returns the Completer for cfg.Provider backed by the real API.
// The credential is not checked here; callers validate the config first.
func NewCompleter(cfg config.Config) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(string(cfg.APIKey()), cfg.Model, cfg.MaxTokens, cfg.BaseURL, nil), nil
	case config.ProviderGemini:
		return NewGeminiClient(string(cfg.APIKey()), cfg.Model, cfg.MaxTokens, nil), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
