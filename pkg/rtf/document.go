package rtf

import "strings"

// Format is the set of character formatting flags carried by a run.
type Format struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// Run is a contiguous span of text sharing one Format.
// A run with LineBreak set carries no text and marks a hard line break.
type Run struct {
	Text      string
	Format    Format
	LineBreak bool
}

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []Run
}

// Text returns the paragraph's text with line breaks as "\n".
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		if r.LineBreak {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Info holds the document information fields found in the \info group.
type Info struct {
	Title   string
	Author  string
	Subject string
}

// Document is the converted form of one RTF input.
// Paragraphs may be empty; empty paragraphs are dropped by Render.
type Document struct {
	Paragraphs []Paragraph
	Info       Info
	Warnings   []string // input irregularities that were tolerated
}

// Text returns the document as plain text, one line per non-blank paragraph.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	var lines []string
	for _, p := range d.Paragraphs {
		text := strings.Trim(p.Text(), edgeSpace)
		if text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
