// Package config resolves aireview settings from the user config file, a .env file
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// Provider identifies the completion API used for the review.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// DefaultMaxTokens caps the number of tokens the model may generate for one review.
const DefaultMaxTokens = 1000

// ErrMissingAPIKey is returned when the credential for the selected provider is not set.
var ErrMissingAPIKey = errors.New("missing API key")

// DefaultModel returns the model used when none is configured.
func (p Provider) DefaultModel() string {
	if p == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "gpt-4.1-mini"
}

// KeyEnv returns the environment variable holding the provider's credential.
func (p Provider) KeyEnv() string {
	if p == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// SecretString is a string that is redacted when printed or logged.
type SecretString string

func (s SecretString) String() string {
	return "[REDACTED]"
}

// LogValue keeps secrets out of structured logs.
func (s SecretString) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

func (s SecretString) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// IsEmpty returns true if the secret string is empty.
func (s SecretString) IsEmpty() bool {
	return string(s) == ""
}

// Config is resolved once at startup and passed by value; it is not mutated afterwards.
type Config struct {
	Provider     Provider     `yaml:"provider"`
	Model        string       `yaml:"model"`
	BaseURL      string       `yaml:"base_url"`
	OpenAIAPIKey SecretString `yaml:"openai_api_key"`
	GeminiAPIKey SecretString `yaml:"gemini_api_key"`
	Output       OutputConfig `yaml:"output"`

	MaxTokens   int  `yaml:"-"`
	OutputColor bool `yaml:"-"` // derived from Output.Color
}

// OutputConfig holds output-related user preferences.
type OutputConfig struct {
	Color *bool `yaml:"color"`
}

// Default returns the configuration used before any file or environment is applied.
func Default() Config {
	return Config{
		Provider:    ProviderOpenAI,
		MaxTokens:   DefaultMaxTokens,
		OutputColor: true,
	}
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() SecretString {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Validate checks the provider and its credential.
// Returns a joined error so users can fix every problem at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		if c.APIKey().IsEmpty() {
			errs = append(errs, fmt.Errorf("%w: set %s", ErrMissingAPIKey, c.Provider.KeyEnv()))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q (valid: openai, gemini)", c.Provider))
	}

	if c.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens))
	}

	return errors.Join(errs...)
}
