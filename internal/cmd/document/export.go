package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
	"github.com/open-cli-collective/rtfdoc/pkg/md"
)

type exportOptions struct {
	dir         string
	format      string
	concurrency int
	force       bool
	output      string
	noColor     bool
}

// NewCmdExport creates the document export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <document-id>...",
		Short: "Convert several documents to files",
		Long: `Fetch and convert several documents concurrently, writing one file per
document into a directory. The export stops at the first failure.`,
		Example: `  # Export two documents as HTML
  rtfdoc document export doc-100 doc-101 --dir out

  # Export as markdown, four at a time
  rtfdoc document export doc-100 doc-101 doc-102 --format markdown --concurrency 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			client, err := cmdutil.NewClient(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), args, opts, client)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory to write exported files into")
	cmd.Flags().StringVar(&opts.format, "format", "html", "Export format: html, markdown")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Number of documents converted at once")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing files")

	return cmd
}

// exported records one written file.
type exported struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Size int    `json:"size"`
}

func runExport(ctx context.Context, documentIDs []string, opts *exportOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	if opts.format != "html" && opts.format != "markdown" {
		return fmt.Errorf("invalid export format %q (valid: html, markdown)", opts.format)
	}
	if opts.concurrency < 1 {
		return fmt.Errorf("invalid concurrency: %d (must be >= 1)", opts.concurrency)
	}

	documentIDs, names, err := exportNames(documentIDs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	// Each goroutine fills only its own slot.
	written := make([]exported, len(documentIDs))

	err = view.Load(ctx, fmt.Sprintf("Exporting %d documents...", len(documentIDs)), func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.concurrency)

		for i, id := range documentIDs {
			g.Go(func() error {
				path, size, err := exportOne(ctx, client, id, names[i], opts)
				if err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
				written[i] = exported{ID: id, Path: path, Size: size}
				return nil
			})
		}

		return g.Wait()
	})
	if err != nil {
		return renderer.Failure(err)
	}

	if renderer.IsJSON() {
		return renderer.RenderJSON(written)
	}

	for _, e := range written {
		renderer.Success(fmt.Sprintf("Exported %s to %s (%s)", e.ID, e.Path, formatFileSize(int64(e.Size))))
	}
	return nil
}

// exportNames drops repeated IDs and returns the file name for each
// remaining one. Two IDs that would share a file are rejected.
func exportNames(documentIDs []string) ([]string, []string, error) {
	var ids, names []string
	seen := make(map[string]bool)
	owner := make(map[string]string)

	for _, id := range documentIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		name := filepath.Base(id)
		if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
			return nil, nil, fmt.Errorf("invalid document ID for a filename: %q", id)
		}
		if other, ok := owner[name]; ok {
			return nil, nil, fmt.Errorf("documents %q and %q would both be exported as %q", other, id, name)
		}
		owner[name] = id

		ids = append(ids, id)
		names = append(names, name)
	}
	return ids, names, nil
}

// exportOne converts a single document and writes it to name under opts.dir.
func exportOne(ctx context.Context, client *api.Client, documentID, name string, opts *exportOptions) (string, int, error) {
	result, err := fetch(ctx, client, documentID)
	if err != nil {
		return "", 0, err
	}

	content := result.Body.HTML
	ext := ".html"
	if opts.format == "markdown" {
		content, err = md.FromHTML(result.Body.HTML)
		if err != nil {
			return "", 0, fmt.Errorf("failed to convert to markdown: %w", err)
		}
		ext = ".md"
	}
	data := []byte(content + "\n")

	path := filepath.Join(opts.dir, name+ext)
	if err := writeExport(path, data, opts.force); err != nil {
		return "", 0, err
	}

	return path, len(data), nil
}

// writeExport writes data to path. Without force an existing file is an
// error, checked atomically with the create.
func writeExport(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("file already exists: %s (use --force to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
