package remote

import (
	"os"
	"strconv"
)

// Config holds all configuration for the backend API client.
type Config struct {
	BaseURL   string
	Token     string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults. The client is
// disabled (no base URL) by default; the app then runs purely on the local
// cache and sample data.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "",
		Token:     "",
		TimeoutMs: 8000,
		LogCalls:  false,
	}
}

// LoadConfig reads API configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRUSTHOME_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TRUSTHOME_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TRUSTHOME_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRUSTHOME_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

// Enabled reports whether a backend endpoint is configured.
func (c Config) Enabled() bool {
	return c.BaseURL != ""
}
