package rtf

import "strings"

// edgeSpace is trimmed from the start and end of every paragraph.
// Non-breaking spaces are content and are kept.
const edgeSpace = " \t\r\n"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Render converts a Document to HTML containing only <p>, <br>, <strong>,
// <em> and <u> elements plus escaped text.
//
// Each paragraph is trimmed of whitespace at its edges; interior whitespace
// is kept. Paragraphs with nothing left to show are dropped. Emphasis nests
// as <strong><em><u>text</u></em></strong>.
func Render(doc *Document) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	for _, p := range doc.Paragraphs {
		runs := trimRuns(p.Runs)
		if !hasContent(runs) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("<p>")
		for _, r := range runs {
			writeRun(&sb, r)
		}
		sb.WriteString("</p>")
	}
	return sb.String()
}

func writeRun(sb *strings.Builder, r Run) {
	if r.LineBreak {
		sb.WriteString("<br>")
		return
	}
	if r.Text == "" {
		return
	}

	if r.Format.Bold {
		sb.WriteString("<strong>")
	}
	if r.Format.Italic {
		sb.WriteString("<em>")
	}
	if r.Format.Underline {
		sb.WriteString("<u>")
	}
	sb.WriteString(escapeHTML(r.Text))
	if r.Format.Underline {
		sb.WriteString("</u>")
	}
	if r.Format.Italic {
		sb.WriteString("</em>")
	}
	if r.Format.Bold {
		sb.WriteString("</strong>")
	}
}

// trimRuns returns a copy of runs with edge whitespace removed from the
// leading and trailing text runs. Line breaks stop the trim.
func trimRuns(runs []Run) []Run {
	out := make([]Run, len(runs))
	copy(out, runs)

	for i := range out {
		if out[i].LineBreak {
			break
		}
		out[i].Text = strings.TrimLeft(out[i].Text, edgeSpace)
		if out[i].Text != "" {
			break
		}
	}
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].LineBreak {
			break
		}
		out[i].Text = strings.TrimRight(out[i].Text, edgeSpace)
		if out[i].Text != "" {
			break
		}
	}
	return out
}

func hasContent(runs []Run) bool {
	for _, r := range runs {
		if r.LineBreak || r.Text != "" {
			return true
		}
	}
	return false
}

// escapeHTML escapes characters that are significant in HTML text.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
