package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/irahardianto/aireview/internal/platform/logger"
	"github.com/sashabaranov/go-openai"
)

// ChatClient abstracts the OpenAI chat completion endpoint for testability.
// *openai.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatClientFactory creates a ChatClient. Production code uses DefaultChatClientFactory;
// tests inject a factory that returns a mock.
type ChatClientFactory func(apiKey, baseURL string) ChatClient

// DefaultChatClientFactory creates a real OpenAI client. An empty baseURL keeps the
// public API endpoint.
func DefaultChatClientFactory(apiKey, baseURL string) ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

// OpenAIClient implements Completer using the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
	factory   ChatClientFactory
}

// NewOpenAIClient creates a new OpenAIClient.
// The apiKey must be non-empty; callers should validate before construction.
func NewOpenAIClient(apiKey, model string, maxTokens int, baseURL string, factory ChatClientFactory) *OpenAIClient {
	if model == "" {
		model = "gpt-4.1-mini"
	}
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	if factory == nil {
		factory = DefaultChatClientFactory
	}
	return &OpenAIClient{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		baseURL:   baseURL,
		factory:   factory,
	}
}

// Complete issues exactly one chat completion request. There is no retry and no
// deadline beyond what ctx carries.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("requesting review", "provider", "openai", "model", c.model, "max_tokens", c.maxTokens)
	start := time.Now()

	resp, err := c.factory(c.apiKey, c.baseURL).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}

	log.Debug("review received",
		"model", c.model,
		"choices", len(resp.Choices),
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
