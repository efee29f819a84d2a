// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	title   string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:  "bash",
		title: "bash",
		install: `To load completions in your current shell session:

  source <(rtfdoc completion bash)

To load completions for every new session:

  # Linux
  rtfdoc completion bash > /etc/bash_completion.d/rtfdoc

  # macOS (requires bash-completion)
  rtfdoc completion bash > $(brew --prefix)/etc/bash_completion.d/rtfdoc`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name:  "zsh",
		title: "zsh",
		install: `If shell completion is not already enabled in your environment,
enable it once with:

  echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for every new session:

  rtfdoc completion zsh > "${fpath[1]}/_rtfdoc"

Start a new shell for the setup to take effect.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:  "fish",
		title: "fish",
		install: `To load completions in your current shell session:

  rtfdoc completion fish | source

To load completions for every new session:

  rtfdoc completion fish > ~/.config/fish/completions/rtfdoc.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:  "powershell",
		title: "PowerShell",
		install: `To load completions in your current shell session:

  rtfdoc completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your PowerShell profile.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rtfdoc.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newCmdShell(s))
	}

	return cmd
}

func newCmdShell(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.title + " completion script",
		Long:                  "Generate " + s.title + " completion script for rtfdoc.\n\n" + s.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
