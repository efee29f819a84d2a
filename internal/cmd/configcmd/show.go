package configcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current rtfdoc configuration with credential source indicators.`,
		Example: `  # Show current config
  rtfdoc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmdutil.ConfigPath(cmd), noColor)
		},
	}

	return cmd
}

// maskToken hides all but the first and last four characters.
func maskToken(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

// source names where value came from: an environment variable, the config
// file, or "-" when neither holds it.
func source(value, fileValue string, fileFound bool, envVar string) string {
	if v := os.Getenv(envVar); v != "" && v == value {
		return envVar
	}
	if fileFound && fileValue == value {
		return "config"
	}
	return "-"
}

func runShow(configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Printf("%-12s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		display := value
		if strings.Contains(strings.ToLower(label), "token") {
			display = maskToken(value)
		}
		fmt.Print(display)

		_, _ = dim.Printf("  (source: %s)\n", source(value, fileValue, fileErr == nil, envVar))
	}

	printField("URL", cfg.URL, fileCfg.URL, config.EnvURL)
	printField("Email", cfg.Email, fileCfg.Email, config.EnvEmail)
	printField("API Token", cfg.APIToken, fileCfg.APIToken, config.EnvAPIToken)
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, config.EnvOutput)

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
