// Package config loads the process-wide configuration from the
// environment. The configuration is read once at startup and treated as
// immutable for the process lifetime.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// APITokenEnvKey names the environment variable holding the Nimbus
	// API bearer token. It has no default: without it the server must
	// refuse to start.
	APITokenEnvKey = "NIMBUS_API_TOKEN"

	// BaseURLEnvKey optionally overrides the API endpoint, e.g. to point
	// at a staging stack.
	BaseURLEnvKey = "NIMBUS_API_BASE_URL"

	// TimeoutEnvKey optionally overrides the per-request timeout. The
	// value is parsed with time.ParseDuration.
	TimeoutEnvKey = "NIMBUS_API_TIMEOUT"

	DefaultBaseURL = "https://api.nimbus.cloud/v1"
	DefaultTimeout = 30 * time.Second
)

// ErrMissingToken is returned by FromEnv when no API token is configured.
var ErrMissingToken = errors.New(APITokenEnvKey + " is not set; create an API token in the Nimbus dashboard and export it")

type Config struct {
	APIToken string
	BaseURL  string
	Timeout  time.Duration
}

// FromEnv builds a Config from the environment. The token may be
// overridden by the caller afterwards (e.g. from a command-line flag);
// an empty token is still fatal at serve time.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIToken: os.Getenv(APITokenEnvKey),
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
	}

	if base := os.Getenv(BaseURLEnvKey); base != "" {
		cfg.BaseURL = base
	}

	if raw := os.Getenv(TimeoutEnvKey); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", TimeoutEnvKey, raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be positive", TimeoutEnvKey, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate reports whether the configuration is complete enough to serve
// tools. No tool may be registered and no network call attempted without
// a token.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return ErrMissingToken
	}
	return nil
}
