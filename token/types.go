package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsLiteral is true for tokens that form a complete value on their own.
func (t TokenType) IsLiteral() bool {
	switch t {
	case TString, TNumber, TTrue, TFalse, TNull:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte

	// Value is the decoded content of a TString.
	Value string
	// Num is the classified value of a TNumber.
	Num Number
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s at %s", t.Type, t.Pos)
}

// String describes the token for error messages.
func (t *Token) String() string {
	switch t.Type {
	case TEOF:
		return EndOfInput
	case TString:
		return "string " + strconv.Quote(t.Value)
	case TNumber:
		return "number " + string(t.Bytes)
	default:
		return strconv.Quote(string(t.Bytes))
	}
}
