package document

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

type listOptions struct {
	limit   int
	cursor  string
	title   string
	sort    string
	output  string
	noColor bool
}

var validSorts = []string{"title", "-title", "created", "-created", "updated", "-updated"}

// NewCmdList creates the document list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documents",
		Long:    `List documents in the document store.`,
		Example: `  # List documents
  rtfdoc document list

  # Filter by title, newest first
  rtfdoc document list --title report --sort -updated

  # Output as JSON
  rtfdoc document list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			client, err := cmdutil.NewClient(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runList(cmd.Context(), opts, client)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of documents to return")
	cmd.Flags().StringVar(&opts.cursor, "cursor", "", "Pagination cursor from a previous listing")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Filter by title (contains)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort order: title, created, updated (prefix - for descending)")

	return cmd
}

func runList(ctx context.Context, opts *listOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if opts.limit <= 0 {
		return fmt.Errorf("invalid limit: %d (must be > 0)", opts.limit)
	}

	if opts.sort != "" && !contains(validSorts, opts.sort) {
		return fmt.Errorf("invalid sort %q (valid: title, created, updated, prefix - for descending)", opts.sort)
	}

	result, err := client.ListDocuments(ctx, &api.ListDocumentsOptions{
		Limit:  opts.limit,
		Cursor: opts.cursor,
		Title:  opts.title,
		Sort:   opts.sort,
	})
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if len(result.Results) == 0 && !renderer.IsJSON() {
		renderer.RenderText("No documents found.")
		return nil
	}

	headers := []string{"ID", "TITLE", "FORMAT", "UPDATED"}
	var rows [][]string

	for _, doc := range result.Results {
		updated := ""
		if !doc.UpdatedAt.IsZero() {
			updated = doc.UpdatedAt.Format("2006-01-02")
		}
		rows = append(rows, []string{
			doc.ID,
			view.Truncate(doc.Title, 60),
			doc.ContentFormat(),
			updated,
		})
	}

	renderer.RenderList(headers, rows, result.HasMore())

	if result.HasMore() && !renderer.IsJSON() {
		fmt.Fprintf(os.Stderr, "\n(showing first %d results, more available)\n", len(result.Results))
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
