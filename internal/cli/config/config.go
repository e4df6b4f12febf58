package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neatops/pulsectl/internal/pulse"
)

// Placeholder values shipped in .env.template; treated as unset.
const (
	placeholderOrgID = "your_organization_id_here"
	placeholderToken = "your_bearer_token_here"
)

// Config holds the pulsectl runtime configuration.
type Config struct {
	// OrgID is the Pulse organization ID. Required.
	OrgID string `koanf:"org_id"`

	// Token is the integration bearer token. Required.
	Token string `koanf:"token"`

	// BaseURL is the API endpoint. Defaults to the production API.
	BaseURL string `koanf:"base_url"`

	// Rate is the client-side request rate in requests per second.
	// The server enforces roughly 15 req/s; the default stays below it.
	Rate float64 `koanf:"rate"`

	// MaxRetries is the retry budget for rate-limited room creations.
	MaxRetries int `koanf:"max_retries"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:    pulse.DefaultBaseURL,
		Rate:       10,
		MaxRetries: 3,
	}
}

// Validate checks that credentials are present and not placeholders.
// It runs before any network activity.
func (c *Config) Validate() error {
	if c.OrgID == "" || c.Token == "" {
		return fmt.Errorf("missing credentials: set PULSE_ORG_ID and PULSE_TOKEN in the environment or a .env file")
	}
	if c.OrgID == placeholderOrgID || c.Token == placeholderToken {
		return fmt.Errorf("credentials are still the .env.template placeholders, fill in your actual values")
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", c.Rate)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries cannot be negative, got %d", c.MaxRetries)
	}
	return nil
}

// DefaultConfigPath returns the default YAML config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".pulsectl", "config.yaml")
}
