package rtf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		doc      *Document
		expected string
	}{
		{
			name:     "nil document",
			doc:      nil,
			expected: "",
		},
		{
			name:     "no paragraphs",
			doc:      &Document{},
			expected: "",
		},
		{
			name: "single paragraph",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "Hello"}}},
			}},
			expected: "<p>Hello</p>",
		},
		{
			name: "paragraphs joined by newline",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "First"}}},
				{Runs: []Run{{Text: " Second"}}},
			}},
			expected: "<p>First</p>\n<p>Second</p>",
		},
		{
			name: "empty paragraphs dropped",
			doc: &Document{Paragraphs: []Paragraph{
				{},
				{Runs: []Run{{Text: "a"}}},
				{Runs: []Run{{Text: "  \t "}}},
				{},
			}},
			expected: "<p>a</p>",
		},
		{
			name: "nesting order",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "x", Format: Format{Bold: true, Italic: true, Underline: true}}}},
			}},
			expected: "<p><strong><em><u>x</u></em></strong></p>",
		},
		{
			name: "italic and underline",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "x", Format: Format{Italic: true, Underline: true}}}},
			}},
			expected: "<p><em><u>x</u></em></p>",
		},
		{
			name: "mixed runs",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{
					{Text: "bold ", Format: Format{Bold: true}},
					{Text: "not-bold"},
				}},
			}},
			expected: "<p><strong>bold </strong>not-bold</p>",
		},
		{
			name: "line break",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "a"}, {LineBreak: true, Format: Format{Bold: true}}, {Text: "b"}}},
			}},
			expected: "<p>a<br>b</p>",
		},
		{
			name: "line break only",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{LineBreak: true}}},
			}},
			expected: "<p><br></p>",
		},
		{
			name: "edge whitespace trimmed across runs",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "  "}, {Text: " a ", Format: Format{Bold: true}}, {Text: " "}}},
			}},
			expected: "<p><strong>a</strong></p>",
		},
		{
			name: "interior whitespace kept",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: " a  b "}}},
			}},
			expected: "<p>a  b</p>",
		},
		{
			name: "whitespace after line break kept",
			doc: &Document{Paragraphs: []Paragraph{
				{Runs: []Run{{LineBreak: true}, {Text: " a"}}},
			}},
			expected: "<p><br> a</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.doc))
		})
	}
}

func TestRender_EscapesText(t *testing.T) {
	doc := &Document{Paragraphs: []Paragraph{
		{Runs: []Run{{Text: `<script>alert("x") & 'y'</script>`}}},
	}}
	assert.Equal(t,
		"<p>&lt;script&gt;alert(&quot;x&quot;) &amp; &#39;y&#39;&lt;/script&gt;</p>",
		Render(doc))
}

func TestRender_DoesNotModifyDocument(t *testing.T) {
	doc := &Document{Paragraphs: []Paragraph{
		{Runs: []Run{{Text: "  a  "}}},
	}}
	Render(doc)
	assert.Equal(t, "  a  ", doc.Paragraphs[0].Runs[0].Text)
}
