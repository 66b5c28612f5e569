package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/aireview/internal/platform/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from the file system and environment.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// Load resolves configuration from ~/.config/aireview/config.yaml, the given .env file
// and the process environment, in increasing order of precedence.
// Missing files are not an error.
func (l *Loader) Load(ctx context.Context, dotEnvPath string) (Config, error) {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		logger.FromContext(ctx).Debug("cannot determine home directory, skipping user config", "error", err)
		return l.LoadFrom(ctx, "", dotEnvPath)
	}
	return l.LoadFrom(ctx, filepath.Join(home, ".config", "aireview", "config.yaml"), dotEnvPath)
}

// LoadFrom is Load with an explicit user config path. An empty path skips the file.
func (l *Loader) LoadFrom(ctx context.Context, configPath, dotEnvPath string) (Config, error) {
	log := logger.FromContext(ctx)
	cfg := Default()

	if configPath != "" {
		if err := l.readConfigFile(ctx, filepath.Clean(configPath), &cfg); err != nil {
			return Config{}, err
		}
	}

	dotEnv := l.readDotEnv(ctx, dotEnvPath)

	// Values already present in the process environment win over .env entries.
	getenv := func(key string) string {
		if v := l.getenv(key); v != "" {
			return v
		}
		return dotEnv[key]
	}
	applyEnvOverrides(&cfg, getenv, log)

	if cfg.Model == "" {
		cfg.Model = cfg.Provider.DefaultModel()
	}

	log.Debug("configuration resolved",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"max_tokens", cfg.MaxTokens,
		"api_key", cfg.APIKey(),
	)
	return cfg, nil
}

// Load resolves configuration using the real file system and environment.
func Load(ctx context.Context, dotEnvPath string) (Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, dotEnvPath)
}

func (l *Loader) readConfigFile(ctx context.Context, path string, cfg *Config) error {
	logger.FromContext(ctx).Debug("loading user config", "path", path)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if l.fs.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Output.Color != nil {
		cfg.OutputColor = *cfg.Output.Color
	}
	cfg.Provider = Provider(strings.ToLower(string(cfg.Provider)))
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	return nil
}

// readDotEnv parses a .env file. A missing or malformed file yields no entries.
func (l *Loader) readDotEnv(ctx context.Context, path string) map[string]string {
	if path == "" {
		return nil
	}
	log := logger.FromContext(ctx)

	data, err := l.fs.ReadFile(filepath.Clean(path))
	if err != nil {
		if !l.fs.IsNotExist(err) {
			log.Warn("cannot read .env file, ignoring", "path", path, "error", err)
		}
		return nil
	}

	entries, err := godotenv.Unmarshal(string(data))
	if err != nil {
		log.Warn("invalid .env file, ignoring", "path", path, "error", err)
		return nil
	}
	log.Debug("loaded .env file", "path", path, "entries", len(entries))
	return entries
}

// applyEnvOverrides applies environment variable overrides to the config.
// The getenv parameter abstracts os.Getenv for testability.
func applyEnvOverrides(cfg *Config, getenv func(string) string, log *slog.Logger) {
	if key := getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIAPIKey = SecretString(key)
	}
	if key := getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = SecretString(key)
	}

	if provider := getenv("AI_REVIEW_PROVIDER"); provider != "" {
		cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(provider)))
	}
	if model := getenv("AI_REVIEW_MODEL"); model != "" {
		cfg.Model = model
	}
	if baseURL := getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if noColor := getenv("AI_REVIEW_NO_COLOR"); noColor != "" {
		switch strings.ToLower(noColor) {
		case "1", "true", "yes":
			cfg.OutputColor = false
		default:
			log.Warn("ignoring unrecognized AI_REVIEW_NO_COLOR value", "value", noColor)
		}
	}
}
