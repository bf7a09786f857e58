// Package config loads the process configuration from environment
// variables. The planner credential is the only required setting; its
// absence is fatal at startup, never a per-call error.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
)

type Config struct {
	// Provider selects the planner backend: "gemini" or "vertex".
	Provider string

	// GeminiAPIKey is required for the gemini provider.
	GeminiAPIKey string

	// VertexProject and VertexLocation are required for the vertex
	// provider.
	VertexProject  string
	VertexLocation string

	// Model is the generative model name.
	Model string

	// MaxRounds bounds tool-call rounds per instruction.
	MaxRounds int

	// SearchTimeout bounds the wait on the directive-retrieval
	// collaborator.
	SearchTimeout time.Duration

	LogLevel  slog.Level
	LogFormat string // "json" | "text"
}

// FromEnv loads and validates the configuration.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:       strings.ToLower(getenvDefault("AUDITAGENT_PROVIDER", ProviderGemini)),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		VertexProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		VertexLocation: getenvDefault("GOOGLE_CLOUD_LOCATION", "us-central1"),
		Model:          getenvDefault("AUDITAGENT_MODEL", "gemini-1.5-flash-latest"),
		LogFormat:      getenvDefault("AUDITAGENT_LOG_FORMAT", "text"),
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case ProviderVertex:
		if cfg.VertexProject == "" {
			return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT environment variable not set")
		}
	default:
		return nil, fmt.Errorf("AUDITAGENT_PROVIDER: unknown provider %q", cfg.Provider)
	}

	var err error
	cfg.MaxRounds, err = getenvInt("AUDITAGENT_MAX_ROUNDS", 15)
	if err != nil {
		return nil, fmt.Errorf("AUDITAGENT_MAX_ROUNDS: %w", err)
	}
	cfg.SearchTimeout, err = getenvDuration("AUDITAGENT_SEARCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("AUDITAGENT_SEARCH_TIMEOUT: %w", err)
	}

	cfg.LogLevel, err = parseLogLevel(getenvDefault("AUDITAGENT_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("AUDITAGENT_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("AUDITAGENT_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// SetupLogger installs the configured slog handler as the default logger.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("not a duration: %q", v)
	}
	return d, nil
}

func parseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", v)
	}
}
