package llm

import (
	"testing"

	"github.com/irahardianto/aireview/internal/engine/config"
)

func TestNewCompleter(t *testing.T) {
	cfg := config.Default()
	cfg.OpenAIAPIKey = "sk"
	cfg.Model = "gpt-4o"

	c, err := NewCompleter(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oc, ok := c.(*OpenAIClient)
	if !ok {
		t.Fatalf("expected *OpenAIClient, got %T", c)
	}
	if oc.model != "gpt-4o" || oc.maxTokens != config.DefaultMaxTokens {
		t.Errorf("unexpected client settings: model=%q maxTokens=%d", oc.model, oc.maxTokens)
	}

	cfg.Provider = config.ProviderGemini
	cfg.GeminiAPIKey = "gm"
	cfg.Model = "gemini-2.5-pro"
	c, err = NewCompleter(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gc, ok := c.(*GeminiClient)
	if !ok {
		t.Fatalf("expected *GeminiClient, got %T", c)
	}
	if gc.apiKey != "gm" {
		t.Errorf("expected Gemini key, got %q", gc.apiKey)
	}
}

func TestNewCompleter_UnknownProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "bedrock"

	if _, err := NewCompleter(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
