package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

var ErrUnsupportedValue = errors.New("unsupported value")

// flushAt is the buffered size at which output is written to the writer.
const flushAt = 32 << 10

type EncState struct {
	style      format.Style
	format     format.Format
	indent     int
	trailingNL bool

	Color func(ir.Type, ColorAttr, string) string

	buf []byte
	w   io.Writer
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		w:      w,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encode(node, es); err != nil {
		return err
	}
	if es.trailingNL {
		es.buf = append(es.buf, '\n')
	}
	return es.flush()
}

func (es *EncState) flush() error {
	if len(es.buf) == 0 {
		return nil
	}
	_, err := es.w.Write(es.buf)
	es.buf = es.buf[:0]
	return err
}

func (es *EncState) colored(t ir.Type, a ColorAttr, s string) {
	if es.Color == nil {
		es.buf = append(es.buf, s...)
		return
	}
	es.buf = append(es.buf, es.Color(t, a, s)...)
}

func (es *EncState) newline(depth int) {
	es.buf = append(es.buf, '\n')
	for range depth * es.indent {
		es.buf = append(es.buf, ' ')
	}
}

func encode(node *ir.Node, es *EncState) error {
	indented := es.style == format.Indented
	return ir.Walk(node, func(y *ir.Node, e ir.Edge, isPost bool) (bool, error) {
		if isPost {
			if indented {
				es.newline(e.Depth)
			}
			es.colored(y.Type(), SepColor, closeBracket(y.Type()))
			return false, es.maybeFlush()
		}
		if p := e.Parent; p != nil {
			if e.Index > 0 {
				es.colored(p.Type(), SepColor, ",")
			}
			if indented {
				es.newline(e.Depth)
			}
			if p.Type() == ir.ObjectType {
				es.colored(ir.ObjectType, FieldColor, token.Quote(e.Key))
				if indented {
					es.colored(ir.ObjectType, SepColor, ": ")
				} else {
					es.colored(ir.ObjectType, SepColor, ":")
				}
			}
		}
		switch y.Type() {
		case ir.ObjectType, ir.ArrayType:
			if y.Len() == 0 {
				es.colored(y.Type(), SepColor, openBracket(y.Type())+closeBracket(y.Type()))
				return false, nil
			}
			es.colored(y.Type(), SepColor, openBracket(y.Type()))
			return true, nil
		}
		if err := es.leaf(y, e); err != nil {
			return false, err
		}
		return false, es.maybeFlush()
	})
}

func (es *EncState) maybeFlush() error {
	if len(es.buf) < flushAt {
		return nil
	}
	return es.flush()
}

func (es *EncState) leaf(y *ir.Node, e ir.Edge) error {
	var s string
	switch y.Type() {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = "false"
		if b, _ := y.AsBool(); b {
			s = "true"
		}
	case ir.StringType:
		v, _ := y.AsString()
		s = token.Quote(v)
	case ir.NumberType:
		n, _ := y.AsNumberValue()
		if !n.IsFinite() {
			return fmt.Errorf("%w: number %s at %s", ErrUnsupportedValue, n, e.Path())
		}
		s = n.String()
	}
	es.colored(y.Type(), ValueColor, s)
	return nil
}

func openBracket(t ir.Type) string {
	if t == ir.ObjectType {
		return "{"
	}
	return "["
}

func closeBracket(t ir.Type) string {
	if t == ir.ObjectType {
		return "}"
	}
	return "]"
}
