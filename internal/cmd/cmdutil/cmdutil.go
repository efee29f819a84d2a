// Package cmdutil holds helpers shared by the rtfdoc commands.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/config"
)

// ConfigPath returns the --config flag value, or the default config path.
func ConfigPath(cmd *cobra.Command) string {
	if cmd != nil {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			return path
		}
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads and validates the configuration at path.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'rtfdoc init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'rtfdoc init' to configure)", err)
	}

	return cfg, nil
}

// NewClient builds an API client from the configuration at path.
func NewClient(path string) (*api.Client, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.URL, cfg.Email, cfg.APIToken), nil
}
