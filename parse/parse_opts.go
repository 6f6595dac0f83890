package parse

import (
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

type parseOpts struct {
	maxDepth   int
	rejectDups bool
	positions  map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth limits the nesting of objects and arrays. Zero, the default,
// means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// RejectDuplicateKeys makes a key repeated within one object an error.
// By default the last value wins and the key keeps its first position.
func RejectDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.rejectDups = true }
}

// ParsePositions records in m the position of the opening bracket of
// every object and array, and of every string and number. Null and
// booleans are shared values and are not recorded.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func (o *parseOpts) trackPos(y *ir.Node, pos token.Pos) {
	if o.positions == nil {
		return
	}
	switch y.Type() {
	case ir.NullType, ir.BoolType:
		return
	}
	o.positions[y] = pos
}
