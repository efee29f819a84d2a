// Package search provides the search command for finding documents.
package search

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

type searchOptions struct {
	query  string // Positional arg: free-text search
	owner  string // Filter by owner ID
	format string // rtf or markdown

	limit int

	output  string
	noColor bool
}

// validFormats are the document formats accepted by --format.
var validFormats = map[string]bool{
	api.FormatRTF:      true,
	api.FormatMarkdown: true,
}

// NewCmdSearch creates the search command.
func NewCmdSearch() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search documents",
		Long: `Full-text search across documents in the document store.

Combine a query with --owner and --format to narrow the results.`,
		Example: `  # Full-text search
  rtfdoc search "quarterly revenue"

  # Only RTF documents owned by a user
  rtfdoc search "budget" --owner user-1 --format rtf

  # Output as JSON for scripting
  rtfdoc search "notes" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.query = args[0]
			}
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runSearch(cmd.Context(), opts, nil, cmdutil.ConfigPath(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.owner, "owner", "", "Filter by owner ID")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Filter by document format: rtf, markdown")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of results")

	return cmd
}

func runSearch(ctx context.Context, opts *searchOptions, client *api.Client, configPath string) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if opts.format != "" && !validFormats[opts.format] {
		return fmt.Errorf("invalid format %q: must be one of rtf, markdown", opts.format)
	}

	if strings.TrimSpace(opts.query) == "" && opts.owner == "" && opts.format == "" {
		return fmt.Errorf("search requires a query or at least one filter (--owner, --format)")
	}

	if opts.limit < 0 {
		return fmt.Errorf("invalid limit: %d (must be >= 0)", opts.limit)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.limit == 0 {
		if renderer.IsJSON() {
			return renderer.RenderJSON([]interface{}{})
		}
		renderer.RenderText("No results.")
		return nil
	}

	// Create API client if not provided
	if client == nil {
		var err error
		client, err = cmdutil.NewClient(configPath)
		if err != nil {
			return err
		}
	}

	result, err := client.Search(ctx, &api.SearchOptions{
		Query:  opts.query,
		Owner:  opts.owner,
		Format: opts.format,
		Limit:  opts.limit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(result.Results) == 0 && !renderer.IsJSON() {
		renderer.RenderText("No results found.")
		return nil
	}

	headers := []string{"ID", "FORMAT", "TITLE", "EXCERPT"}
	var rows [][]string

	for _, r := range result.Results {
		rows = append(rows, []string{
			r.Document.ID,
			r.Document.ContentFormat(),
			view.Truncate(r.Document.Title, 40),
			view.Truncate(r.Excerpt, 50),
		})
	}

	renderer.RenderList(headers, rows, result.HasMore())

	if result.HasMore() && !renderer.IsJSON() {
		fmt.Fprintf(os.Stderr, "\n(showing %d of %d results, use --limit to see more)\n",
			len(result.Results), result.TotalSize)
	}

	return nil
}
