// Package rtf converts a restricted dialect of RTF into sanitized HTML.
//
// Conversion is a pipeline of three pure steps:
//
//	Tokenize(raw) -> Build(tokens) -> Render(doc)
//
// Formatting and metadata suppression follow group nesting: a \b inside
// {...} ends with the group, and a {\fonttbl ...} group is skipped as a
// whole without affecting the text that follows it. No step ever fails on
// malformed input.
package rtf

import "strings"

// Convert tokenizes and builds raw RTF into a Document.
func Convert(raw string) *Document {
	return Build(Tokenize(raw))
}

// ToHTML converts raw RTF to sanitized HTML.
func ToHTML(raw string) string {
	return Render(Convert(raw))
}

// IsRTF reports whether data starts with an RTF header, ignoring a
// leading byte order mark and whitespace.
func IsRTF(data []byte) bool {
	s := strings.TrimPrefix(string(data), "\ufeff")
	s = strings.TrimLeft(s, edgeSpace)
	return strings.HasPrefix(s, `{\rtf`)
}
