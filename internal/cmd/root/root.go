// Package root provides the root command for the rtfdoc CLI.
package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/internal/cmd/completion"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/configcmd"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/convert"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/document"
	initcmd "github.com/open-cli-collective/rtfdoc/internal/cmd/init"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/search"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/whoami"
	"github.com/open-cli-collective/rtfdoc/internal/logging"
	"github.com/open-cli-collective/rtfdoc/internal/version"
)

// NewCmdRoot creates the root command for rtfdoc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtfdoc",
		Short: "Read RTF documents from a document store",
		Long: `rtfdoc fetches documents from a remote document store and converts
their legacy RTF bodies to sanitized HTML or readable markdown.

Local files can be converted without any configuration using
'rtfdoc convert'.

Get started by running: rtfdoc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initLogging(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/rtfdoc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "text", "log format: text, json")

	cmd.SetVersionTemplate("rtfdoc version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(document.NewCmdDocument())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(search.NewCmdSearch())
	cmd.AddCommand(whoami.NewCmdWhoami())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// initLogging installs the process logger from the logging flags.
func initLogging(cmd *cobra.Command) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	formatName, _ := cmd.Flags().GetString("log-format")
	debug, _ := cmd.Flags().GetBool("debug")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if debug {
		level = logging.LevelDebug
	}

	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logging.Init(os.Stderr, level, format)
	return nil
}
