package token

import "fmt"

// Pos is a location in the input. Line and Col are 1-based; Col counts
// runes from the start of the line.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d (offset %d)", p.Line, p.Col, p.Offset)
}
