package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

type downloadOptions struct {
	html       bool
	outputFile string
	force      bool
	output     string
	noColor    bool
}

// NewCmdDownload creates the document download command.
func NewCmdDownload() *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:   "download <document-id>",
		Short: "Download a document",
		Long:  `Download a document's stored body, or its converted HTML with --html.`,
		Example: `  # Download the stored RTF
  rtfdoc document download doc-100

  # Save converted HTML to a specific file
  rtfdoc document download doc-100 --html -O report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			client, err := cmdutil.NewClient(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runDownload(cmd.Context(), args[0], opts, client)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Save converted HTML instead of the stored body")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "O", "", "Output file path (default: <document-id> with a format extension)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing file without warning")

	return cmd
}

func runDownload(ctx context.Context, documentID string, opts *downloadOptions, client *api.Client) error {
	outputPath := opts.outputFile
	if outputPath == "" {
		// Sanitize the ID so it cannot escape the working directory
		outputPath = filepath.Base(documentID)
		if outputPath == "" || outputPath == "." || outputPath == ".." || outputPath == string(filepath.Separator) {
			return fmt.Errorf("invalid document ID for a filename: %q", documentID)
		}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	var result *loaded
	err := view.Load(ctx, "Downloading document...", func(ctx context.Context) error {
		var err error
		result, err = fetch(ctx, client, documentID)
		return err
	})
	if err != nil {
		return renderer.Failure(err)
	}

	data := result.Body.Raw
	if opts.html {
		data = []byte(result.Body.HTML + "\n")
	}
	if opts.outputFile == "" {
		outputPath += extension(result.Document.ContentFormat(), opts.html)
	}

	if !opts.force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	renderer.Success(fmt.Sprintf("Downloaded: %s", outputPath))
	renderer.RenderKeyValue("Size", formatFileSize(int64(len(data))))

	return nil
}

// extension returns the file extension for a saved document body.
func extension(format string, html bool) string {
	switch {
	case html:
		return ".html"
	case format == api.FormatMarkdown:
		return ".md"
	default:
		return ".rtf"
	}
}

func formatFileSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
