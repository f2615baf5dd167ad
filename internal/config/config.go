// Package config provides configuration loading and validation for the
// scanner CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the scanner configuration, loadable from a JSON file. All fields
// are optional; missing values fall back to defaults or environment
// variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP API port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional persistence)

	// Scanning
	UserAgent      string `json:"user_agent,omitempty"`      // User-Agent header for page fetches
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-fetch timeout bound
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Headless-browser fallback for SPA sites
	MaxConcurrent  int    `json:"max_concurrent,omitempty"`  // Concurrent scans in a batch request

	// Enrichment
	APIKey string `json:"api_key,omitempty"` // Gemini API key for generative enrichment

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed trace information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           8080,
		TimeoutSeconds: 20,
		MaxConcurrent:  4,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}
	return nil
}

// MergeWithDefaults fills unset fields from defaults. Bools are not merged:
// unset and false are indistinguishable, so flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.MaxConcurrent == 0 {
		result.MaxConcurrent = defaults.MaxConcurrent
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	return result
}

// ApplyEnv fills secrets from the environment when not set elsewhere.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
