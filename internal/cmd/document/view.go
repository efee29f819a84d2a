package document

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/cmd/cmdutil"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

type viewOptions struct {
	html    bool
	raw     bool
	web     bool
	output  string
	noColor bool
	baseURL string
}

// NewCmdView creates the document view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <document-id>",
		Short: "View a document",
		Long: `Fetch a document and display its converted content.

RTF bodies are converted to sanitized HTML and shown as markdown by default.`,
		Example: `  # View a document
  rtfdoc document view doc-100

  # Show the sanitized HTML
  rtfdoc document view doc-100 --html

  # Show the stored RTF
  rtfdoc document view doc-100 --raw

  # Open in browser
  rtfdoc document view doc-100 --web`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			cfg, err := cmdutil.LoadConfig(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			opts.baseURL = cfg.URL
			if opts.output == "" && cfg.OutputFormat != "" {
				opts.output = cfg.OutputFormat
			}
			return runView(cmd.Context(), args[0], opts, api.NewClient(cfg.URL, cfg.Email, cfg.APIToken))
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Show sanitized HTML instead of markdown")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show the stored document body")
	cmd.Flags().BoolVarP(&opts.web, "web", "w", false, "Open in browser instead of displaying")
	cmd.MarkFlagsMutuallyExclusive("html", "raw", "web")

	return cmd
}

func runView(ctx context.Context, documentID string, opts *viewOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.web {
		doc, err := client.GetDocument(ctx, documentID)
		if err != nil {
			return renderer.Failure(err)
		}
		return openBrowser(opts.baseURL + doc.Links.WebUI)
	}

	var result *loaded
	err := view.Load(ctx, "Loading document...", func(ctx context.Context) error {
		var err error
		result, err = fetch(ctx, client, documentID)
		return err
	})
	if err != nil {
		return renderer.Failure(err)
	}

	if renderer.IsJSON() {
		return renderer.RenderJSON(result)
	}

	renderer.RenderKeyValue("Title", result.Document.Title)
	renderer.RenderKeyValue("ID", result.Document.ID)
	renderer.RenderKeyValue("Format", result.Document.ContentFormat())
	renderer.RenderText("")

	renderer.RenderBody(result.Body, bodyMode(opts.html, opts.raw))
	return nil
}

func bodyMode(html, raw bool) view.BodyMode {
	switch {
	case raw:
		return view.BodyRaw
	case html:
		return view.BodyHTML
	default:
		return view.BodyMarkdown
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
