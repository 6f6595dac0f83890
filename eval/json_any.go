package eval

import (
	"encoding/json"
	"strconv"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// MarshalJSON returns the compact JSON encoding of node.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	s, err := encode.EncodeString(node)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// FromAny converts a Go value to a document. Nodes are copied; other
// values go through encoding/json, so map keys come out sorted.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone()
	case []*ir.Node:
		return ir.FromSlice(x).Clone()
	case map[string]*ir.Node:
		return ir.FromMap(x).Clone()
	case map[int]*ir.Node:
		m := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			m[strconv.Itoa(k)] = v
		}
		return ir.FromMap(m).Clone()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// ToAny converts a document to the values encoding/json decodes into,
// except that integers are int64. It fails on cyclic documents.
func ToAny(node *ir.Node) (any, error) {
	type frame struct {
		obj map[string]any
		arr []any
	}
	var (
		stack []*frame
		res   any
	)
	emit := func(e ir.Edge, v any) {
		if len(stack) == 0 {
			res = v
			return
		}
		top := stack[len(stack)-1]
		if top.obj != nil {
			top.obj[e.Key] = v
			return
		}
		top.arr = append(top.arr, v)
	}
	err := ir.Walk(node, func(y *ir.Node, e ir.Edge, isPost bool) (bool, error) {
		if isPost {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.obj != nil {
				emit(e, top.obj)
			} else {
				emit(e, top.arr)
			}
			return false, nil
		}
		switch y.Type() {
		case ir.ObjectType:
			stack = append(stack, &frame{obj: make(map[string]any, y.Len())})
			return true, nil
		case ir.ArrayType:
			stack = append(stack, &frame{arr: make([]any, 0, y.Len())})
			return true, nil
		case ir.StringType:
			s, _ := y.AsString()
			emit(e, s)
		case ir.BoolType:
			b, _ := y.AsBool()
			emit(e, b)
		case ir.NumberType:
			n, _ := y.AsNumberValue()
			if i, ok := n.Integer(); ok {
				emit(e, i)
			} else {
				emit(e, n.Float64())
			}
		default:
			emit(e, nil)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
