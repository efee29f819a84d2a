// Package config provides configuration management for rtfdoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvURL      = "RTFDOC_URL"
	EnvEmail    = "RTFDOC_EMAIL"
	EnvAPIToken = "RTFDOC_API_TOKEN"
	EnvOutput   = "RTFDOC_OUTPUT"
)

// EnvVars lists every environment variable LoadFromEnv reads.
var EnvVars = []string{EnvURL, EnvEmail, EnvAPIToken, EnvOutput}

// Config holds the rtfdoc configuration.
type Config struct {
	URL          string `yaml:"url"`
	Email        string `yaml:"email"`
	APIToken     string `yaml:"api_token"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.APIToken == "" {
		return errors.New("api_token is required")
	}

	// Validate URL scheme
	if !strings.HasPrefix(c.URL, "https://") {
		return errors.New("url must use https")
	}

	return nil
}

// NormalizeURL strips surrounding whitespace and trailing slashes.
func (c *Config) NormalizeURL() {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if url := os.Getenv(EnvURL); url != "" {
		c.URL = url
	}
	if email := os.Getenv(EnvEmail); email != "" {
		c.Email = email
	}
	if token := os.Getenv(EnvAPIToken); token != "" {
		c.APIToken = token
	}
	if output := os.Getenv(EnvOutput); output != "" {
		c.OutputFormat = output
	}
}

// ActiveEnvVars returns the override variables that are currently set.
func ActiveEnvVars() []string {
	var active []string
	for _, v := range EnvVars {
		if os.Getenv(v) != "" {
			active = append(active, v)
		}
	}
	return active
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rtfdoc", "config.yml")
	}

	// Fall back to ~/.config/rtfdoc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rtfdoc", "config.yml")
	}

	return filepath.Join(home, ".config", "rtfdoc", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// User read/write only; the file holds the API token.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing or unreadable file yields an empty config.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
