package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer tokenizes a JSON document held in memory. It is not safe for
// concurrent use.
type Lexer struct {
	d []byte
	i int

	line, col int

	peeked *Token
	err    error
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{d: d, line: 1, col: 1}
}

// Peek returns the next token without consuming it. Repeated calls
// return the same token until [Lexer.Take] is called.
func (l *Lexer) Peek() (*Token, error) {
	if l.peeked != nil {
		return l.peeked, nil
	}
	if l.err != nil {
		return nil, l.err
	}
	tok, err := l.next()
	if err != nil {
		l.err = err
		return nil, err
	}
	l.peeked = tok
	return tok, nil
}

// Take consumes and returns the next token. Once the input is exhausted
// every call returns a TEOF token.
func (l *Lexer) Take() (*Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Type != TEOF {
		l.peeked = nil
	}
	return tok, nil
}

// Pos returns the position of the next unread byte.
func (l *Lexer) Pos() Pos {
	return Pos{Offset: l.i, Line: l.line, Col: l.col}
}

func (l *Lexer) skipWS() {
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case ' ', '\t', '\r':
			l.col++
		case '\n':
			l.line++
			l.col = 1
		default:
			return
		}
		l.i++
	}
}

func (l *Lexer) next() (*Token, error) {
	l.skipWS()
	pos := l.Pos()
	if l.i >= len(l.d) {
		return &Token{Type: TEOF, Pos: pos}, nil
	}
	switch c := l.d[l.i]; c {
	case '{':
		return l.single(TLCurl, pos), nil
	case '}':
		return l.single(TRCurl, pos), nil
	case '[':
		return l.single(TLSquare, pos), nil
	case ']':
		return l.single(TRSquare, pos), nil
	case ',':
		return l.single(TComma, pos), nil
	case ':':
		return l.single(TColon, pos), nil
	case '"':
		return l.str(pos)
	case 't':
		return l.word(pos, "true", TTrue)
	case 'f':
		return l.word(pos, "false", TFalse)
	case 'n':
		return l.word(pos, "null", TNull)
	default:
		if c == '-' || asciiDigit(c) {
			return l.num(pos)
		}
		return nil, newLexErr(ErrUnexpected, pos, foundRune(l.d[l.i:]), "a JSON value or structural character")
	}
}

func (l *Lexer) single(tt TokenType, pos Pos) *Token {
	tok := &Token{Type: tt, Pos: pos, Bytes: l.d[l.i : l.i+1]}
	l.i++
	l.col++
	return tok
}

// word matches one of the keywords true, false and null.
func (l *Lexer) word(pos Pos, w string, tt TokenType) (*Token, error) {
	n := len(w)
	for j := 0; j < n; j++ {
		k := l.i + j
		if k >= len(l.d) || l.d[k] != w[j] {
			return nil, newLexErr(ErrLiteral, pos, foundByte(l.d, k), "'"+w+"'")
		}
	}
	if k := l.i + n; k < len(l.d) && identByte(l.d[k]) {
		return nil, newLexErr(ErrLiteral, pos, foundByte(l.d, k), "'"+w+"'")
	}
	tok := &Token{Type: tt, Pos: pos, Bytes: l.d[l.i : l.i+n]}
	l.i += n
	l.col += n
	return tok, nil
}

func identByte(c byte) bool {
	return c == '_' || c >= utf8.RuneSelf || asciiDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (l *Lexer) num(pos Pos) (*Token, error) {
	n, integral, expected, err := scanNumber(l.d[l.i:])
	if err != nil {
		at := Pos{Offset: l.i + n, Line: l.line, Col: l.col + n}
		return nil, newLexErr(err, at, foundByte(l.d, l.i+n), expected)
	}
	lit := l.d[l.i : l.i+n]
	num, err := ClassifyNumber(lit, integral)
	if err != nil {
		return nil, newLexErr(err, pos, string(lit), "number within float64 range")
	}
	l.i += n
	l.col += n
	return &Token{Type: TNumber, Pos: pos, Bytes: lit, Num: num}, nil
}

// str lexes a string literal starting at the opening quote. Raw newlines
// are control characters and rejected, so a string never spans lines.
func (l *Lexer) str(pos Pos) (*Token, error) {
	d := l.d
	i := l.i + 1
	col := l.col + 1
	at := func() Pos {
		return Pos{Offset: i, Line: l.line, Col: col}
	}
	var buf []byte
	start := i
	for {
		if i >= len(d) {
			return nil, newLexErr(ErrUnterminated, at(), EndOfInput, "'\"'")
		}
		c := d[i]
		switch {
		case c == '"':
			var v string
			if buf == nil {
				v = string(d[start:i])
			} else {
				buf = append(buf, d[start:i]...)
				v = string(buf)
			}
			tok := &Token{Type: TString, Pos: pos, Bytes: d[l.i : i+1], Value: v}
			l.i = i + 1
			l.col = col + 1
			return tok, nil
		case c == '\\':
			buf = append(buf, d[start:i]...)
			r, sz, err := l.escape(i, col)
			if err != nil {
				return nil, err
			}
			buf = utf8.AppendRune(buf, r)
			i += sz
			col += sz
			start = i
		case c < 0x20:
			return nil, newLexErr(ErrUnicodeControl, at(), foundRune(d[i:]), "escaped control character")
		case c < utf8.RuneSelf:
			i++
			col++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, newLexErr(ErrBadUTF8, at(), foundRune(d[i:]), "valid UTF-8")
			}
			i += sz
			col++
		}
	}
}

// escape decodes the escape sequence at d[i] == '\\', returning the rune
// and the number of (ASCII) bytes consumed.
func (l *Lexer) escape(i, col int) (rune, int, error) {
	d := l.d
	errAt := func(e error, k int, expected string) error {
		return newLexErr(e, Pos{Offset: k, Line: l.line, Col: col + k - i}, foundByte(d, k), expected)
	}
	if i+1 >= len(d) {
		return 0, 0, errAt(ErrUnterminated, i+1, "escape character")
	}
	switch d[i+1] {
	case '"':
		return '"', 2, nil
	case '\\':
		return '\\', 2, nil
	case '/':
		return '/', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'u':
	default:
		return 0, 0, errAt(ErrBadEscape, i+1, `one of '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u'`)
	}
	r, err := l.hex4(i+2, errAt)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	// a high surrogate followed by \uDC00-\uDFFF forms one code point.
	if r < 0xdc00 && i+7 < len(d) && d[i+6] == '\\' && d[i+7] == 'u' {
		lo, err := l.hex4(i+8, errAt)
		if err != nil {
			return 0, 0, err
		}
		if lo >= 0xdc00 && lo <= 0xdfff {
			return combineSurrogates(r, lo), 12, nil
		}
	}
	return utf8.RuneError, 6, nil
}

func (l *Lexer) hex4(k int, errAt func(error, int, string) error) (rune, error) {
	var r rune
	for j := k; j < k+4; j++ {
		if j >= len(l.d) {
			return 0, errAt(ErrUnterminated, j, "hex digit")
		}
		v, ok := hexVal(l.d[j])
		if !ok {
			return 0, errAt(ErrBadUnicode, j, "hex digit")
		}
		r = r<<4 | v
	}
	return r, nil
}
