package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a JSON string literal. The characters '"', '\\',
// backspace, form feed, newline, carriage return and tab use their short
// escapes; other characters below U+0020 use \u00xx; everything else is
// written as is. Invalid UTF-8 is replaced by U+FFFD.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	start := 0
	for i := 0; i < len(v); {
		c := v[i]
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRuneInString(v[i:])
			if r == utf8.RuneError && sz == 1 {
				d = append(d, v[start:i]...)
				d = utf8.AppendRune(d, utf8.RuneError)
				i += sz
				start = i
				continue
			}
			i += sz
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		d = append(d, v[start:i]...)
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		i++
		start = i
	}
	d = append(d, v[start:]...)
	return append(d, '"')
}

// Unquote decodes a complete JSON string literal.
func Unquote(v string) (string, error) {
	lx := NewLexer([]byte(v))
	tok, err := lx.Take()
	if err != nil {
		return "", err
	}
	if tok.Type != TString {
		return "", newLexErr(ErrUnexpected, tok.Pos, tok.String(), "string")
	}
	end, err := lx.Take()
	if err != nil {
		return "", err
	}
	if end.Type != TEOF {
		return "", newLexErr(ErrUnexpected, end.Pos, end.String(), EndOfInput)
	}
	return tok.Value, nil
}

func hexVal(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}

// combineSurrogates joins a UTF-16 pair, returning U+FFFD for a lone half.
func combineSurrogates(hi, lo rune) rune {
	return utf16.DecodeRune(hi, lo)
}
