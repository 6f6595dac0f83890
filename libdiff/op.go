package libdiff

import (
	"github.com/signadot/jsondoc/ir"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

// Op is one JSON Patch operation. Value is nil for removals and shares
// structure with the target document otherwise.
type Op struct {
	Op    string
	Path  string
	Value *ir.Node
}

type Patch []Op

// Node renders the patch as a JSON Patch document.
func (p Patch) Node() *ir.Node {
	ops := make([]*ir.Node, len(p))
	for i := range p {
		op := &p[i]
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(op.Op)},
			{Key: "path", Val: ir.FromString(op.Path)},
		}
		if op.Op != OpRemove {
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: op.Value})
		}
		ops[i] = ir.FromKeyVals(kvs)
	}
	return ir.FromSlice(ops)
}

// Empty reports whether the patch has no operations.
func (p Patch) Empty() bool {
	return len(p) == 0
}
