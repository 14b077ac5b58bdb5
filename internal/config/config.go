// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort           = 8080
	DefaultForwardTimeout = 60 * time.Second
	DefaultForwardRetries = 1
	DefaultFetchTimeout   = 30 * time.Second
)

// Config holds the runtime configuration for the analysis service.
// All values come from the environment; a .env file is loaded by the CLI
// before this is built.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// BackendURL is the external analysis backend's /analyze endpoint.
	// When set the server runs in relay mode and forwards uploads there;
	// when empty the built-in analysis engine serves requests.
	BackendURL string

	// ForwardTimeout bounds a single forwarding call to the backend.
	ForwardTimeout time.Duration

	// ForwardRetries is the number of additional attempts after a
	// transport failure. Non-2xx backend responses are not retried.
	ForwardRetries int

	// UploadDir is where request-scoped temp files are written.
	// Defaults to the OS temp directory.
	UploadDir string

	// GeminiAPIKey enables LLM-generated learning plans when set.
	// The deterministic plan generator is always available as fallback.
	GeminiAPIKey string

	// FetchTimeout bounds job-description URL fetches.
	FetchTimeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           DefaultPort,
		BackendURL:     os.Getenv("BACKEND_URL"),
		ForwardTimeout: DefaultForwardTimeout,
		ForwardRetries: DefaultForwardRetries,
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		FetchTimeout:   DefaultFetchTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("FORWARD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORWARD_TIMEOUT %q: %w", v, err)
		}
		cfg.ForwardTimeout = d
	}

	if v := os.Getenv("FORWARD_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORWARD_RETRIES %q: %w", v, err)
		}
		cfg.ForwardRetries = n
	}

	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port must be in 1-65535, got %d", c.Port)
	}
	if c.ForwardTimeout <= 0 {
		return fmt.Errorf("config error: forward timeout must be positive")
	}
	if c.ForwardRetries < 0 {
		return fmt.Errorf("config error: forward retries must be non-negative")
	}
	if c.UploadDir != "" {
		if info, err := os.Stat(c.UploadDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: upload dir is not a directory: %s", c.UploadDir)
		}
	}
	return nil
}

// RelayMode reports whether requests are forwarded to an external backend.
func (c *Config) RelayMode() bool {
	return c.BackendURL != ""
}
