// Package md converts between markdown and the HTML shown for documents.
//
// Documents stored in markdown are rendered to HTML so they travel the same
// display path as converted RTF documents, and document HTML is turned back
// into markdown for readable terminal output.
package md

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mdParser is a pre-configured goldmark instance with GFM table extension.
// Raw HTML in the source is omitted from the output.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// ToHTML converts markdown content to HTML.
func ToHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := mdParser.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
