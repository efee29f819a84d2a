// Package init provides the init command for rtfdoc.
package init

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		url      string
		email    string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize rtfdoc configuration",
		Long: `Initialize rtfdoc with your document store credentials.

This command will guide you through setting up the document store URL,
your email, and an API token. The configuration will be saved to
~/.config/rtfdoc/config.yml.`,
		Example: `  # Interactive setup
  rtfdoc init

  # Pre-populate URL
  rtfdoc init --url https://docs.example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), cmdutil.ConfigPath(cmd), url, email, noVerify)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Document store URL (e.g., https://docs.example.com)")
	cmd.Flags().StringVar(&email, "email", "", "Your account email")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(ctx context.Context, configPath, prefillURL, prefillEmail string, noVerify bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		URL:   prefillURL,
		Email: prefillEmail,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Document store URL").
				Description("Base URL of your document store").
				Placeholder("https://docs.example.com").
				Value(&cfg.URL).
				Validate(required("URL")),

			huh.NewInput().
				Title("Email").
				Description("Your account email").
				Placeholder("you@example.com").
				Value(&cfg.Email).
				Validate(required("email")),

			huh.NewInput().
				Title("API Token").
				Description("Create one from your account settings").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.APIToken).
				Validate(required("API token")),

			huh.NewSelect[string]().
				Title("Default output").
				Options(
					huh.NewOption("Table", "table"),
					huh.NewOption("JSON", "json"),
					huh.NewOption("Plain", "plain"),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.NormalizeURL()
	if cfg.OutputFormat == "table" {
		cfg.OutputFormat = ""
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped
	if !noVerify {
		fmt.Print("Verifying connection... ")
		profile, err := verifyConnection(ctx, cfg)
		if err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Printf("success! (signed in as %s)\n", profile.DisplayName)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  rtfdoc document list")
	fmt.Println("  rtfdoc document view <DOCUMENT_ID>")

	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// verifyConnection checks the credentials by fetching the caller's profile.
func verifyConnection(ctx context.Context, cfg *config.Config) (*api.Profile, error) {
	client := api.NewClient(cfg.URL, cfg.Email, cfg.APIToken)

	profile, err := client.GetProfile(ctx)
	if err == nil {
		return profile, nil
	}

	var errResp *api.ErrorResponse
	if errors.As(err, &errResp) {
		switch errResp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("authentication failed - check your email and API token")
		case http.StatusForbidden:
			return nil, fmt.Errorf("access denied - check your permissions")
		default:
			return nil, fmt.Errorf("unexpected status code: %d", errResp.StatusCode)
		}
	}
	return nil, err
}
