// Package convert provides the convert command for local files.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/view"
	"github.com/open-cli-collective/rtfdoc/pkg/rtf"
)

type convertOptions struct {
	html       bool
	outputFile string
	force      bool
	noColor    bool
	stdin      io.Reader
	stdout     io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a local RTF file",
		Long: `Convert a local RTF or markdown file to sanitized HTML, or to markdown
for reading in the terminal. Use - to read from standard input.

No configuration or network access is needed.`,
		Example: `  # Show a file as markdown
  rtfdoc convert letter.rtf

  # Write sanitized HTML to a file
  rtfdoc convert letter.rtf --html -O letter.html

  # Convert from a pipe
  cat letter.rtf | rtfdoc convert - --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runConvert(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Output sanitized HTML instead of markdown")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "O", "", "Write the result to a file instead of standard output")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing output file")

	return cmd
}

func runConvert(input string, opts *convertOptions) error {
	raw, err := readInput(input, opts.stdin)
	if err != nil {
		return err
	}

	body, err := view.ConvertBody(formatFor(input, raw), raw)
	if err != nil {
		return err
	}
	for _, w := range body.Warnings {
		slog.Warn("conversion warning", "file", input, "warning", w)
	}

	mode := view.BodyMarkdown
	if opts.html {
		mode = view.BodyHTML
	}

	renderer := view.NewRenderer(view.FormatPlain, opts.noColor)

	if opts.outputFile == "" {
		if opts.stdout != nil {
			renderer.SetWriter(opts.stdout)
		}
		renderer.RenderBody(body, mode)
		return nil
	}

	if !opts.force {
		if _, err := os.Stat(opts.outputFile); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", opts.outputFile)
		}
	}

	out, err := os.Create(opts.outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	renderer.SetWriter(out)
	renderer.RenderBody(body, mode)
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	renderer.SetWriter(os.Stderr)
	renderer.Success(fmt.Sprintf("Converted %s to %s", input, opts.outputFile))
	return nil
}

func readInput(input string, stdin io.Reader) ([]byte, error) {
	if input == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(io.LimitReader(stdin, api.MaxContentSize+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		if len(data) > api.MaxContentSize {
			return nil, fmt.Errorf("input exceeds %d bytes", api.MaxContentSize)
		}
		return data, nil
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if info.Size() > api.MaxContentSize {
		return nil, fmt.Errorf("file %s exceeds %d bytes", input, api.MaxContentSize)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// formatFor picks the body format from the file extension, falling back to
// sniffing the RTF header.
func formatFor(input string, raw []byte) string {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".md", ".markdown":
		return api.FormatMarkdown
	case ".rtf":
		return api.FormatRTF
	}
	if rtf.IsRTF(raw) {
		return api.FormatRTF
	}
	return api.FormatMarkdown
}
