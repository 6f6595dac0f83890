// Package token provides tokenization of JSON text.
//
// [Lexer] produces one [Token] at a time with one token of lookahead:
// [Lexer.Peek] returns the next token without consuming it and
// [Lexer.Take] consumes it. Every token records the [Pos] of its first
// character.
//
// Lexing stops at the first malformed token with a [*LexError] naming the
// offending character (or end of input), what was expected there and
// where.
//
// [Quote] renders a Go string as a JSON string literal using the same
// escape set the lexer accepts.
package token
