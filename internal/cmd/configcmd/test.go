package configcmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/config"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity with configured credentials",
		Long:  `Test that rtfdoc can reach the document store with the current configuration.`,
		Example: `  # Test connection
  rtfdoc config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			cfg, err := cmdutil.LoadConfig(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runTest(cmd.Context(), cfg, noColor)
		},
	}

	return cmd
}

func runTest(ctx context.Context, cfg *config.Config, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Printf("Testing connection to %s...\n", cfg.URL)

	client := api.NewClient(cfg.URL, cfg.Email, cfg.APIToken)
	profile, err := client.GetProfile(ctx)
	if err != nil {
		var errResp *api.ErrorResponse
		if !errors.As(err, &errResp) {
			_, _ = red.Println("✗ Connection failed:", err)
			fmt.Println("\nCheck your URL with: rtfdoc config show")
			fmt.Println("Reconfigure with: rtfdoc init")
			return fmt.Errorf("connection failed: %w", err)
		}

		switch errResp.StatusCode {
		case http.StatusUnauthorized:
			_, _ = red.Println("✗ Authentication failed: 401 Unauthorized")
			fmt.Println("\nCheck your credentials with: rtfdoc config show")
			fmt.Println("Reconfigure with: rtfdoc init")
			return fmt.Errorf("authentication failed")
		case http.StatusForbidden:
			_, _ = red.Println("✗ Access denied: 403 Forbidden")
			fmt.Println("\nCheck your permissions.")
			return fmt.Errorf("access denied")
		default:
			_, _ = red.Printf("✗ Unexpected response: %d\n", errResp.StatusCode)
			return fmt.Errorf("unexpected status code: %d", errResp.StatusCode)
		}
	}

	_, _ = green.Println("✓ Authentication successful")
	_, _ = green.Println("✓ API access verified")
	fmt.Printf("\nAuthenticated as: %s <%s>\n", profile.DisplayName, profile.Email)

	return nil
}
