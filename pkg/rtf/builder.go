package rtf

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// destination classifies what the text of a group is for.
type destination int

const (
	destContent destination = iota // rendered text
	destSkip                       // metadata, discarded
	destInfo                       // \info group, searched for fields
	destTitle                      // \title inside \info
	destAuthor                     // \author inside \info
	destSubject                    // \subject inside \info
)

// skipDestinations are control words that mark a freshly opened group as
// non-content when they appear as its first token.
var skipDestinations = map[string]bool{
	"fonttbl":            true,
	"colortbl":           true,
	"stylesheet":         true,
	"generator":          true,
	"listtable":          true,
	"listoverridetable":  true,
	"rsidtbl":            true,
	"xmlnstbl":           true,
	"latentstyles":       true,
	"themedata":          true,
	"colorschememapping": true,
	"datastore":          true,
	"pict":               true,
	"object":             true,
	"header":             true,
	"headerl":            true,
	"headerr":            true,
	"headerf":            true,
	"footer":             true,
	"footerl":            true,
	"footerr":            true,
	"footerf":            true,
	"footnote":           true,
	"fldinst":            true,
	"bkmkstart":          true,
	"bkmkend":            true,
	"operator":           true,
	"company":            true,
	"comment":            true,
}

// infoFields are the \info children whose text is kept in Document.Info.
var infoFields = map[string]destination{
	"title":   destTitle,
	"author":  destAuthor,
	"subject": destSubject,
}

// scope is the formatting state of one group.
type scope struct {
	Format
	dest  destination
	fresh bool // no token seen yet since the group opened
	uc    int  // fallback characters to skip after \u
}

// builder holds the state of one Build call.
type builder struct {
	doc     *Document
	stack   []scope
	para    Paragraph
	text    strings.Builder // text of the open run
	runFmt  Format
	charset *charmap.Charmap
	skip    int  // fallback characters still to drop after \u
	high    rune // UTF-16 high surrogate waiting for its low half
	info    [destSubject + 1]strings.Builder
}

// Build consumes a token stream and returns the document tree.
// It never fails: unknown control words are dropped, a close brace with no
// open group is ignored, and groups left open at the end are closed.
func Build(tokens iter.Seq[Token]) *Document {
	b := &builder{
		doc:     &Document{},
		stack:   []scope{{uc: 1}},
		charset: defaultCharset,
	}
	for tok := range tokens {
		b.handle(tok)
	}
	return b.finish()
}

func (b *builder) top() *scope {
	return &b.stack[len(b.stack)-1]
}

func (b *builder) handle(tok Token) {
	switch tok.Type {
	case TokenGroupOpen:
		b.dropSurrogate()
		b.skip = 0
		child := *b.top()
		child.fresh = true
		b.stack = append(b.stack, child)
		return
	case TokenGroupClose:
		b.dropSurrogate()
		b.skip = 0
		if len(b.stack) == 1 {
			b.warnf("unbalanced group close at offset %d", tok.Position)
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
		return
	}

	sc := b.top()
	fresh := sc.fresh
	sc.fresh = false

	switch sc.dest {
	case destContent:
		b.content(tok, sc, fresh)
	case destInfo:
		if fresh && tok.Type == TokenControlWord {
			if d, ok := infoFields[tok.Name]; ok {
				sc.dest = d
			}
		}
	case destTitle, destAuthor, destSubject:
		b.infoText(tok, sc.dest)
	}
}

// content handles a non-group token while the top scope is destContent.
func (b *builder) content(tok Token, sc *scope, fresh bool) {
	switch tok.Type {
	case TokenText:
		b.appendFallback(tok.Text)
	case TokenHexEscape:
		if b.skip > 0 {
			b.skip--
			return
		}
		b.appendText(string(b.charset.DecodeByte(tok.Byte)))
	case TokenControlSymbol:
		b.dropSurrogate()
		b.skip = 0
		if fresh && tok.Char == '*' {
			sc.dest = destSkip
			return
		}
		b.symbol(tok.Char)
	case TokenControlWord:
		if tok.Name != "u" {
			b.dropSurrogate()
		}
		b.skip = 0
		if fresh {
			if tok.Name == "info" {
				sc.dest = destInfo
				return
			}
			if skipDestinations[tok.Name] {
				sc.dest = destSkip
				return
			}
		}
		b.word(tok, sc)
	}
}

// word applies a control word in content state.
func (b *builder) word(tok Token, sc *scope) {
	switch tok.Name {
	case "b":
		sc.Bold = tok.On()
	case "i":
		sc.Italic = tok.On()
	case "ul":
		sc.Underline = tok.On()
	case "ulnone":
		sc.Underline = false
	case "plain":
		sc.Format = Format{}
	case "par", "sect", "page":
		b.paragraphBreak()
	case "line":
		b.lineBreak()
	case "tab":
		b.appendText("\t")
	case "u":
		if tok.HasParam {
			b.appendUnicode(tok.Param)
			b.skip = sc.uc
		}
	case "uc":
		if tok.HasParam && tok.Param >= 0 {
			sc.uc = tok.Param
		}
	case "ansicpg":
		if cm, ok := lookupCodePage(tok.Param); ok {
			b.charset = cm
		}
	case "mac":
		b.charset = charmap.Macintosh
	case "pc":
		b.charset = charmap.CodePage437
	case "pca":
		b.charset = charmap.CodePage850
	}
}

// symbol applies a control symbol in content state.
func (b *builder) symbol(ch rune) {
	switch ch {
	case '\\', '{', '}':
		b.appendText(string(ch))
	case '~':
		b.appendText("\u00a0")
	case '_':
		b.appendText("\u2011")
	case '\n', '\r':
		b.paragraphBreak()
	}
}

// appendFallback appends text after dropping any pending \u fallback
// characters. Raw line endings in RTF text carry no meaning.
func (b *builder) appendFallback(s string) {
	s = stripNewlines(s)
	for b.skip > 0 && s != "" {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		b.skip--
	}
	b.appendText(s)
}

// appendUnicode appends the character of a \uN escape. Characters outside
// the BMP arrive as two escapes carrying a UTF-16 surrogate pair; the high
// half is held until the low half follows.
func (b *builder) appendUnicode(n int) {
	if n < 0 {
		n += 65536
	}
	r := rune(n)
	switch {
	case r >= 0xd800 && r < 0xdc00:
		b.dropSurrogate()
		b.high = r
		return
	case r >= 0xdc00 && r < 0xe000 && b.high != 0:
		r = utf16.DecodeRune(b.high, r)
		b.high = 0
	case !utf8.ValidRune(r) || r == 0:
		r = utf8.RuneError
	}
	b.appendText(string(r))
}

// dropSurrogate replaces a high surrogate that lost its low half.
func (b *builder) dropSurrogate() {
	if b.high == 0 {
		return
	}
	b.high = 0
	b.appendText(string(utf8.RuneError))
}

// appendText adds s to the open run, starting a new run when the
// formatting of the current scope differs from the open run's.
func (b *builder) appendText(s string) {
	if s == "" {
		return
	}
	b.dropSurrogate()
	f := b.top().Format
	if b.text.Len() > 0 && f != b.runFmt {
		b.flushRun()
	}
	if b.text.Len() == 0 {
		b.runFmt = f
	}
	b.text.WriteString(s)
}

func (b *builder) flushRun() {
	if b.text.Len() == 0 {
		return
	}
	b.para.Runs = append(b.para.Runs, Run{Text: b.text.String(), Format: b.runFmt})
	b.text.Reset()
}

func (b *builder) lineBreak() {
	b.dropSurrogate()
	b.flushRun()
	b.para.Runs = append(b.para.Runs, Run{Format: b.top().Format, LineBreak: true})
}

// paragraphBreak closes the current paragraph, even when it is empty.
func (b *builder) paragraphBreak() {
	b.dropSurrogate()
	b.flushRun()
	b.doc.Paragraphs = append(b.doc.Paragraphs, b.para)
	b.para = Paragraph{}
}

// infoText collects text for a document information field.
func (b *builder) infoText(tok Token, d destination) {
	switch tok.Type {
	case TokenText:
		b.info[d].WriteString(stripNewlines(tok.Text))
	case TokenHexEscape:
		b.info[d].WriteRune(b.charset.DecodeByte(tok.Byte))
	case TokenControlSymbol:
		switch tok.Char {
		case '\\', '{', '}':
			b.info[d].WriteRune(tok.Char)
		}
	}
}

func (b *builder) finish() *Document {
	if open := len(b.stack) - 1; open > 0 {
		b.warnf("%d unclosed group(s) at end of input", open)
	}
	b.dropSurrogate()
	b.flushRun()
	b.doc.Paragraphs = append(b.doc.Paragraphs, b.para)
	b.doc.Info = Info{
		Title:   strings.TrimSpace(b.info[destTitle].String()),
		Author:  strings.TrimSpace(b.info[destAuthor].String()),
		Subject: strings.TrimSpace(b.info[destSubject].String()),
	}
	return b.doc
}

func (b *builder) warnf(format string, args ...interface{}) {
	b.doc.Warnings = append(b.doc.Warnings, fmt.Sprintf(format, args...))
}

var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return newlineStripper.Replace(s)
}
