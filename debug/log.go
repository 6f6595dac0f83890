package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
)

var out io.Writer = os.Stderr

// Node wraps a node so that it formats with %s as indented JSON.
type Node struct{ *ir.Node }

func (y Node) String() string {
	s, err := encode.EncodeString(y.Node, encode.EncodeStyle(format.Indented))
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node %s] %v", y.Node.Kind(), err)
	}
	return s
}

// Logf formats like fmt.Printf to stderr. *ir.Node arguments are
// rendered like [Node] and Go maps and slices through encoding/json.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Node{x}.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
