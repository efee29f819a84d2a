// Package whoami provides the whoami command.
package whoami

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

type whoamiOptions struct {
	output  string
	noColor bool
}

// NewCmdWhoami creates the whoami command.
func NewCmdWhoami() *cobra.Command {
	opts := &whoamiOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the configured API token",
		Example: `  rtfdoc whoami
  rtfdoc whoami -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			client, err := cmdutil.NewClient(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runWhoami(cmd.Context(), opts, client)
		},
	}

	return cmd
}

func runWhoami(ctx context.Context, opts *whoamiOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if renderer.IsJSON() {
		return renderer.RenderJSON(profile)
	}

	renderer.RenderKeyValue("Name", profile.DisplayName)
	renderer.RenderKeyValue("Email", profile.Email)
	renderer.RenderKeyValue("ID", profile.ID)
	if profile.Role != "" {
		renderer.RenderKeyValue("Role", profile.Role)
	}
	return nil
}
