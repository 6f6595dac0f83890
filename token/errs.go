package token

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrNumber            = errors.New("number")
	ErrUnexpected        = errors.New("unexpected character")
)

// EndOfInput is the Found text of errors raised at the end of the input.
const EndOfInput = "end of input"

// LexError reports a malformed token. Found is the offending character
// (quoted) or [EndOfInput], Expected describes what would have been
// accepted at Pos.
type LexError struct {
	Err      error
	Pos      Pos
	Found    string
	Expected string
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: found %s, expected %s at %s", e.Err.Error(), e.Found, e.Expected, e.Pos)
}

func newLexErr(e error, p Pos, found, expected string) *LexError {
	return &LexError{Err: e, Pos: p, Found: found, Expected: expected}
}

func foundByte(d []byte, i int) string {
	if i >= len(d) {
		return EndOfInput
	}
	return foundRune(d[i:])
}

func foundRune(d []byte) string {
	if len(d) == 0 {
		return EndOfInput
	}
	r, sz := utf8.DecodeRune(d)
	if r == utf8.RuneError && sz <= 1 {
		return fmt.Sprintf("byte 0x%02x", d[0])
	}
	return strconv.QuoteRune(r)
}
