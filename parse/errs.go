package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrUnexpected   = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrTrailing     = fmt.Errorf("%w: trailing content", ErrParse)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrMaxDepth     = fmt.Errorf("%w: maximum depth exceeded", ErrParse)
)

// ParseError locates a parse failure. Err is one of the sentinels above
// or a *token.LexError when the input is not a sequence of JSON tokens.
// Every ParseError matches ErrParse under errors.Is.
type ParseError struct {
	Err      error
	Pos      token.Pos
	Found    string
	Expected string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Error() string {
	var le *token.LexError
	if errors.As(e.Err, &le) {
		return fmt.Sprintf("%s: %s", ErrParse, le)
	}
	if e.Expected == "" {
		return fmt.Sprintf("%s: found %s at %s", e.Err, e.Found, e.Pos)
	}
	return fmt.Sprintf("%s: found %s, expected %s at %s", e.Err, e.Found, e.Expected, e.Pos)
}

func lexErr(err error) error {
	var le *token.LexError
	if errors.As(err, &le) {
		return &ParseError{Err: le, Pos: le.Pos, Found: le.Found, Expected: le.Expected}
	}
	return err
}

func tokErr(err error, tok *token.Token, expected string) *ParseError {
	return &ParseError{Err: err, Pos: tok.Pos, Found: tok.String(), Expected: expected}
}
