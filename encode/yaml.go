package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
)

// EncodeYAML writes node as a YAML document, keeping object key order.
func EncodeYAML(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return Encode(node, w, append(opts, EncodeFormat(format.YAMLFormat))...)
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	return yaml.NewEncoder(w, yaml.Indent(indent)).Encode(v)
}

// yamlValue converts node to values goccy/go-yaml encodes in order:
// objects become yaml.MapSlice and arrays []any.
func yamlValue(node *ir.Node) (any, error) {
	type frame struct {
		obj yaml.MapSlice
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
		if e.Parent.Type() == ir.ObjectType {
			top.obj = append(top.obj, yaml.MapItem{Key: e.Key, Value: v})
			return
		}
		top.arr = append(top.arr, v)
	}
	err := ir.Walk(node, func(y *ir.Node, e ir.Edge, isPost bool) (bool, error) {
		if isPost {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if y.Type() == ir.ObjectType {
				emit(e, top.obj)
			} else {
				emit(e, top.arr)
			}
			return false, nil
		}
		switch y.Type() {
		case ir.ObjectType:
			stack = append(stack, &frame{obj: yaml.MapSlice{}})
			return true, nil
		case ir.ArrayType:
			stack = append(stack, &frame{arr: []any{}})
			return true, nil
		case ir.NullType:
			emit(e, nil)
		case ir.BoolType:
			b, _ := y.AsBool()
			emit(e, b)
		case ir.StringType:
			s, _ := y.AsString()
			emit(e, s)
		case ir.NumberType:
			n, _ := y.AsNumberValue()
			if !n.IsFinite() {
				return false, fmt.Errorf("%w: number %s at %s", ErrUnsupportedValue, n, e.Path())
			}
			if i, ok := n.Integer(); ok {
				emit(e, i)
			} else if f, ok := n.AsFloat32(); ok {
				emit(e, f)
			} else {
				emit(e, n.Float64())
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
