package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/irahardianto/aireview/internal/platform/logger"
	"google.golang.org/genai"
)

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	// GenerateContent sends a prompt and returns a response.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Production code uses DefaultClientFactory;
// tests inject a factory that returns a mock.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

// genaiClient wraps the real genai.Client to satisfy GenerativeClient.
type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiClient implements Completer using the Google Gemini API.
type GeminiClient struct {
	apiKey    string
	model     string
	maxTokens int
	factory   ClientFactory
}

// NewGeminiClient creates a new GeminiClient.
// The apiKey must be non-empty; callers should validate before construction.
// The factory creates the underlying generative client; nil selects DefaultClientFactory.
func NewGeminiClient(apiKey, model string, maxTokens int, factory ClientFactory) *GeminiClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &GeminiClient{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		factory:   factory,
	}
}

// Complete sends the prompt to Gemini in a single attempt and returns the first
// candidate's text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("requesting review", "provider", "gemini", "model", c.model, "max_tokens", c.maxTokens)
	start := time.Now()

	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens), // #nosec G115 -- bounded by config validation
	}

	resp, err := client.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := extractText(resp)
	log.Debug("review received",
		"model", c.model,
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// extractText joins the text parts of the first candidate. A response with no
// candidates or no text yields "".
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
