package rtf

import (
	"iter"
	"math"
	"unicode/utf8"
)

// Tokenize scans raw RTF and returns a lazy token sequence.
// Recognized forms:
//   - \'hh - hex escape, decoded to one byte
//   - \word or \word-123 - control word; one trailing space is consumed
//   - \x - control symbol, where x is any non-letter
//   - { and } - group delimiters
//
// Everything else is returned as coalesced TokenText runs. The sequence
// can be ranged over any number of times and always yields the same tokens.
// Tokenize never fails: malformed escapes are folded into text.
func Tokenize(raw string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := &scanner{input: raw}
		for {
			tok, ok := s.next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// TokenizeAll collects the whole token sequence into a slice.
func TokenizeAll(raw string) []Token {
	var tokens []Token
	for tok := range Tokenize(raw) {
		tokens = append(tokens, tok)
	}
	return tokens
}

type scanner struct {
	input string
	pos   int
}

// next returns the next token, or false at end of input.
func (s *scanner) next() (Token, bool) {
	for s.pos < len(s.input) {
		start := s.pos
		switch s.input[s.pos] {
		case '{':
			s.pos++
			return Token{Type: TokenGroupOpen, Position: start}, true
		case '}':
			s.pos++
			return Token{Type: TokenGroupClose, Position: start}, true
		case '\\':
			if tok, ok := s.escape(); ok {
				return tok, true
			}
		default:
			s.pos++
			return s.text(start), true
		}
	}
	return Token{}, false
}

// escape scans the sequence introduced by a backslash at s.pos.
// It returns false only for a trailing backslash, which yields nothing.
func (s *scanner) escape() (Token, bool) {
	start := s.pos
	s.pos++ // skip '\'
	if s.pos >= len(s.input) {
		return Token{}, false
	}

	ch := s.input[s.pos]
	switch {
	case ch == '\'':
		if s.pos+2 < len(s.input) && isHex(s.input[s.pos+1]) && isHex(s.input[s.pos+2]) {
			b := unhex(s.input[s.pos+1])<<4 | unhex(s.input[s.pos+2])
			s.pos += 3
			return Token{Type: TokenHexEscape, Byte: b, Position: start}, true
		}
		// Not a valid hex escape - keep the characters as text
		s.pos++
		return s.text(start), true

	case isLetter(ch):
		return s.controlWord(start), true

	default:
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		s.pos += size
		return Token{Type: TokenControlSymbol, Char: r, Position: start}, true
	}
}

// controlWord scans letters, an optional signed parameter and the
// delimiter. s.pos points at the first letter.
func (s *scanner) controlWord(start int) Token {
	nameStart := s.pos
	for s.pos < len(s.input) && isLetter(s.input[s.pos]) {
		s.pos++
	}
	tok := Token{
		Type:     TokenControlWord,
		Name:     s.input[nameStart:s.pos],
		Position: start,
	}

	// A '-' only belongs to the word when a digit follows it
	neg := false
	p := s.pos
	if p < len(s.input) && s.input[p] == '-' {
		neg = true
		p++
	}
	if p < len(s.input) && isDigit(s.input[p]) {
		var n int64
		for p < len(s.input) && isDigit(s.input[p]) {
			if n <= math.MaxInt32 {
				n = n*10 + int64(s.input[p]-'0')
			}
			p++
		}
		if neg {
			n = -n
		}
		tok.Param = int(clamp32(n))
		tok.HasParam = true
		s.pos = p
	}

	// A single space delimiter is part of the control word
	if s.pos < len(s.input) && s.input[s.pos] == ' ' {
		s.pos++
	}
	return tok
}

// text consumes literal characters up to the next backslash or brace.
// start may precede s.pos when a malformed escape is folded into the run.
func (s *scanner) text(start int) Token {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\\', '{', '}':
			return Token{Type: TokenText, Text: s.input[start:s.pos], Position: start}
		}
		s.pos++
	}
	return Token{Type: TokenText, Text: s.input[start:s.pos], Position: start}
}

func clamp32(n int64) int64 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return n
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func unhex(b byte) byte {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	default:
		return b - '0'
	}
}
