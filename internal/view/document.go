package view

import (
	"fmt"
	"strings"

	"github.com/open-cli-collective/rtfdoc/pkg/md"
	"github.com/open-cli-collective/rtfdoc/pkg/rtf"
)

// BodyMode selects how a document body is displayed.
type BodyMode string

const (
	BodyMarkdown BodyMode = "markdown"
	BodyHTML     BodyMode = "html"
	BodyRaw      BodyMode = "raw"
)

// Body is a converted document body.
type Body struct {
	Raw      []byte   `json:"-"`
	HTML     string   `json:"html"`
	Title    string   `json:"title,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ConvertBody converts raw stored content to sanitized HTML. format is the
// stored body format; anything other than "markdown" is treated as RTF.
func ConvertBody(format string, raw []byte) (*Body, error) {
	if format == "markdown" {
		html, err := md.ToHTML(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to render markdown: %w", err)
		}
		return &Body{Raw: raw, HTML: strings.TrimSpace(html)}, nil
	}

	doc := rtf.Convert(string(raw))
	return &Body{
		Raw:      raw,
		HTML:     rtf.Render(doc),
		Title:    doc.Info.Title,
		Warnings: doc.Warnings,
	}, nil
}

// RenderBody writes body in the given mode. Markdown that fails to convert
// falls back to HTML.
func (r *Renderer) RenderBody(body *Body, mode BodyMode) {
	switch mode {
	case BodyRaw:
		fmt.Fprintln(r.writer, string(body.Raw))
		return
	case BodyHTML:
		r.renderHTML(body.HTML)
		return
	}

	markdown, err := md.FromHTML(body.HTML)
	if err != nil {
		r.Warning("Failed to convert to markdown, showing HTML")
		r.renderHTML(body.HTML)
		return
	}
	if markdown == "" {
		fmt.Fprintln(r.writer, "(No content)")
		return
	}
	fmt.Fprintln(r.writer, markdown)
}

func (r *Renderer) renderHTML(html string) {
	if html == "" {
		fmt.Fprintln(r.writer, "(No content)")
		return
	}
	fmt.Fprintln(r.writer, html)
}
