package rtf

import "fmt"

// TokenType represents the kind of an RTF token.
type TokenType int

const (
	TokenText          TokenType = iota // run of literal characters
	TokenControlWord                    // \name or \nameN
	TokenControlSymbol                  // \ followed by one non-letter
	TokenGroupOpen                      // {
	TokenGroupClose                     // }
	TokenHexEscape                      // \'hh
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenControlWord:
		return "ControlWord"
	case TokenControlSymbol:
		return "ControlSymbol"
	case TokenGroupOpen:
		return "GroupOpen"
	case TokenGroupClose:
		return "GroupClose"
	case TokenHexEscape:
		return "HexEscape"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexical element of an RTF document.
type Token struct {
	Type     TokenType
	Name     string // set for ControlWord
	Param    int    // set for ControlWord when HasParam is true
	HasParam bool   // distinguishes \b (no parameter) from \b0
	Char     rune   // set for ControlSymbol
	Byte     byte   // set for HexEscape
	Text     string // set for Text tokens
	Position int    // byte offset in original input
}

// Is reports whether the token is the control word name.
func (t Token) Is(name string) bool {
	return t.Type == TokenControlWord && t.Name == name
}

// On reports whether a toggle control word switches its property on.
// A missing parameter or any nonzero parameter means on; \b0 means off.
func (t Token) On() bool {
	return !t.HasParam || t.Param != 0
}

func (t Token) String() string {
	switch t.Type {
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case TokenControlWord:
		if t.HasParam {
			return fmt.Sprintf(`\%s%d`, t.Name, t.Param)
		}
		return `\` + t.Name
	case TokenControlSymbol:
		return `\` + string(t.Char)
	case TokenGroupOpen:
		return "{"
	case TokenGroupClose:
		return "}"
	case TokenHexEscape:
		return fmt.Sprintf(`\'%02x`, t.Byte)
	default:
		return t.Type.String()
	}
}
