package token

import (
	"errors"
	"testing"
)

func lexAll(t *testing.T, in string) []*Token {
	t.Helper()
	lx := NewLexer([]byte(in))
	var res []*Token
	for {
		tok, err := lx.Take()
		if err != nil {
			t.Fatalf("lexing %q: %v", in, err)
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res
		}
	}
}

func lexErr(in string) *LexError {
	lx := NewLexer([]byte(in))
	for {
		tok, err := lx.Take()
		if err != nil {
			var le *LexError
			if errors.As(err, &le) {
				return le
			}
			return nil
		}
		if tok.Type == TEOF {
			return nil
		}
	}
}

func TestLexStructure(t *testing.T) {
	toks := lexAll(t, `{"a": [1, -2.5, true, false, null]}`)
	want := []TokenType{
		TLCurl, TString, TColon, TLSquare, TNumber, TComma, TNumber, TComma,
		TTrue, TComma, TFalse, TComma, TNull, TRSquare, TRCurl, TEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s want %s", i, tok.Type, want[i])
		}
	}
	if toks[1].Value != "a" {
		t.Errorf("key %q", toks[1].Value)
	}
}

func TestLexPositions(t *testing.T) {
	toks := lexAll(t, "{\n  \"k\": \"é\",\n\t\"z\": 1\n}")
	type lc struct{ line, col int }
	want := []lc{{1, 1}, {2, 3}, {2, 6}, {2, 8}, {2, 11}, {3, 2}, {3, 5}, {3, 7}, {4, 1}, {4, 2}}
	for i, tok := range toks {
		l, c := tok.Pos.LineCol()
		if l != want[i].line || c != want[i].col {
			t.Errorf("token %d (%s): got %d:%d want %d:%d", i, tok.Type, l, c, want[i].line, want[i].col)
		}
	}
}

func TestPeekTake(t *testing.T) {
	lx := NewLexer([]byte(`[true]`))
	p1, err := lx.Peek()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := lx.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 || p1.Type != TLSquare {
		t.Fatalf("peek not idempotent: %v %v", p1, p2)
	}
	tk, _ := lx.Take()
	if tk != p1 {
		t.Fatal("take did not return peeked token")
	}
	tk, _ = lx.Take()
	if tk.Type != TTrue {
		t.Fatalf("got %s", tk.Type)
	}
	lx.Take()
	for range 3 {
		tk, _ = lx.Take()
		if tk.Type != TEOF {
			t.Fatalf("expected repeated EOF, got %s", tk.Type)
		}
	}
}

func TestLexStrings(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`"Aéé"`, "Aéé"},
		{`"😀"`, "😀"},
		{`"\ud83d\ude00"`, "😀"},
		{`"\ud83d"`, "�"},
		{`"\ud83dx"`, "�x"},
		{`"\ud83dA"`, "�A"},
		{`"日本語"`, "日本語"},
		{"\"\u007f\"", "\u007f"},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.in)
		if toks[0].Type != TString {
			t.Fatalf("%s: got %s", tt.in, toks[0].Type)
		}
		if toks[0].Value != tt.want {
			t.Errorf("%s: got %q want %q", tt.in, toks[0].Value, tt.want)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		err   error
		found string
		line  int
		col   int
	}{
		{"unterminated", `"abc`, ErrUnterminated, EndOfInput, 1, 5},
		{"bad escape", `"a\qb"`, ErrBadEscape, "'q'", 1, 4},
		{"bad unicode", `"\u12g4"`, ErrBadUnicode, "'g'", 1, 6},
		{"short unicode", `"\u12`, ErrUnterminated, EndOfInput, 1, 6},
		{"control", "\"a\u0007\"", ErrUnicodeControl, `'\a'`, 1, 3},
		{"raw newline", "\"a\nb\"", ErrUnicodeControl, `'\n'`, 1, 3},
		{"bad utf8", "\"a\xffb\"", ErrBadUTF8, "byte 0xff", 1, 3},
		{"minus alone", `-`, ErrNumber, EndOfInput, 1, 2},
		{"minus letter", `-x`, ErrNumber, "'x'", 1, 2},
		{"dot no digit", `1.`, ErrNumber, EndOfInput, 1, 3},
		{"dot letter", `1.e5`, ErrNumber, "'e'", 1, 3},
		{"exp no digit", `1e`, ErrNumber, EndOfInput, 1, 3},
		{"exp sign no digit", `1e+`, ErrNumber, EndOfInput, 1, 4},
		{"leading zero", `01`, ErrNumberLeadingZero, "'1'", 1, 2},
		{"overflow", `1e400`, ErrNumber, "1e400", 1, 1},
		{"bad true", `tru`, ErrLiteral, EndOfInput, 1, 1},
		{"bad false", `  fals3`, ErrLiteral, "'3'", 1, 3},
		{"bad null", `nul`, ErrLiteral, EndOfInput, 1, 1},
		{"null suffix", `nullx`, ErrLiteral, "'x'", 1, 1},
		{"unexpected", "\n  @", ErrUnexpected, "'@'", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			le := lexErr(tt.in)
			if le == nil {
				t.Fatalf("expected error lexing %q", tt.in)
			}
			if !errors.Is(le, tt.err) {
				t.Errorf("got %v, want %v", le.Err, tt.err)
			}
			if le.Found != tt.found {
				t.Errorf("found %q, want %q", le.Found, tt.found)
			}
			if le.Pos.Line != tt.line || le.Pos.Col != tt.col {
				t.Errorf("pos %d:%d, want %d:%d", le.Pos.Line, le.Pos.Col, tt.line, tt.col)
			}
			if le.Expected == "" {
				t.Error("empty expectation")
			}
		})
	}
}

func TestLexErrorSticky(t *testing.T) {
	lx := NewLexer([]byte(`[@]`))
	if _, err := lx.Take(); err != nil {
		t.Fatal(err)
	}
	_, err1 := lx.Peek()
	_, err2 := lx.Take()
	if err1 == nil || err1 != err2 {
		t.Fatalf("expected sticky error, got %v %v", err1, err2)
	}
}

func TestKeywordMessage(t *testing.T) {
	le := lexErr(`[ttrue]`)
	if le == nil {
		t.Fatal("expected error")
	}
	if le.Expected != "'true'" || le.Pos.Col != 2 {
		t.Errorf("got expected=%s col=%d", le.Expected, le.Pos.Col)
	}
}
