package rtf

import "golang.org/x/text/encoding/charmap"

// defaultCharset decodes hex escapes when the document declares no code page.
var defaultCharset = charmap.Windows1252

// codePages maps \ansicpgN values to single-byte character sets.
var codePages = map[int]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28605: charmap.ISO8859_15,
}

// lookupCodePage returns the charset for a code page number.
func lookupCodePage(n int) (*charmap.Charmap, bool) {
	cm, ok := codePages[n]
	return cm, ok
}
