// Package config loads server configuration: an optional YAML file plus the
// required FMP_API_KEY environment variable, read exactly once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no API key is configured. It is fatal at
// startup; the key is never re-read per call.
var ErrMissingAPIKey = errors.New("FMP_API_KEY is not set")

// Config is the full server configuration.
type Config struct {
	// APIKey authenticates every upstream request. Set via FMP_API_KEY; the
	// YAML file deliberately has no field for it so keys stay out of files.
	APIKey string `yaml:"-"`

	// BaseURL overrides the provider host, mainly for tests.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds each upstream HTTP call.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxConcurrency limits parallel tool executions; 0 disables the limit.
	MaxConcurrency int `yaml:"max_concurrency"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the slog handler. Logs always go to stderr: stdout
// belongs to the protocol.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 10,
		MaxConcurrency: 10,
		Log:            LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the Config: defaults, then the YAML file at path (skipped when
// path is empty), then the environment. A missing API key fails here so the
// process aborts at startup rather than on the first call.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config parse: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	return cfg, nil
}

// applyEnvOverrides applies FMP_-prefixed environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FMP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
