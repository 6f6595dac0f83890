package patch

import (
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
)

var (
	ErrPatch  = errors.New("patch error")
	ErrBadOp  = fmt.Errorf("%w: malformed operation", ErrPatch)
	ErrRootOp = fmt.Errorf("%w: unsupported operation on the document root", ErrPatch)
)

// Apply applies the RFC 6902 operations in ops to a copy of doc and
// returns the patched copy. Object key order and number kinds of values
// the operations do not touch are kept.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	arr, err := ops.RequireArray()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
	}
	for i, op := range arr.Elements() {
		if _, err := op.RequireObject(); err != nil {
			return nil, fmt.Errorf("op %d: %w: %w", i, ErrBadOp, err)
		}
	}
	d, err := encode.EncodeString(ops)
	if err != nil {
		return nil, err
	}
	jops, err := jsonpatch.DecodePatch([]byte(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
	}
	if debug.Patch() {
		debug.Logf("json-patch %s\non %s\n", debug.Node{Node: ops}, debug.Node{Node: doc})
	}
	cur, err := doc.Clone()
	if err != nil {
		return nil, err
	}
	for i, jop := range jops {
		op, _ := arr.At(i)
		if cur, err = applyOp(cur, jop, op); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	return cur, nil
}

// applyOp applies one operation to doc in place and returns the new
// root. jop carries the decoded op name and pointers; op carries the
// value with its number kinds intact.
func applyOp(doc *ir.Node, jop jsonpatch.Operation, op *ir.Node) (*ir.Node, error) {
	if _, ok := op.Get("op"); !ok {
		return nil, fmt.Errorf("%w: missing \"op\"", ErrBadOp)
	}
	kind := jop.Kind()
	path, err := jop.Path()
	if err != nil {
		return nil, fmt.Errorf("%w: path: %w", ErrBadOp, err)
	}
	toks, err := parsePointer(path)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "add":
		v, err := opValue(op, kind)
		if err != nil {
			return nil, err
		}
		return add(doc, toks, v)
	case "remove":
		if len(toks) == 0 {
			return nil, fmt.Errorf("%w: remove", ErrRootOp)
		}
		_, err := remove(doc, toks)
		return doc, err
	case "replace":
		v, err := opValue(op, kind)
		if err != nil {
			return nil, err
		}
		return replace(doc, toks, v)
	case "move":
		from, fromToks, err := opFrom(jop)
		if err != nil {
			return nil, err
		}
		if from == path {
			return doc, nil
		}
		if len(fromToks) == 0 {
			return nil, fmt.Errorf("%w: move", ErrRootOp)
		}
		if strings.HasPrefix(path, from+"/") {
			return nil, fmt.Errorf("%w: cannot move %q into itself", ErrPatch, from)
		}
		v, err := remove(doc, fromToks)
		if err != nil {
			return nil, err
		}
		return add(doc, toks, v)
	case "copy":
		_, fromToks, err := opFrom(jop)
		if err != nil {
			return nil, err
		}
		v, err := lookup(doc, fromToks)
		if err != nil {
			return nil, err
		}
		if v, err = v.Clone(); err != nil {
			return nil, err
		}
		return add(doc, toks, v)
	case "test":
		want, ok := op.Get("value")
		if !ok {
			return nil, fmt.Errorf("%w: test without value", ErrBadOp)
		}
		got, err := lookup(doc, toks)
		if err != nil {
			return nil, err
		}
		eq, err := ir.Equal(got, want)
		if err != nil {
			return nil, err
		}
		if !eq {
			return nil, fmt.Errorf("%w: test of %q failed", ErrPatch, path)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrBadOp, kind)
	}
}

func opValue(op *ir.Node, kind string) (*ir.Node, error) {
	v, ok := op.Get("value")
	if !ok {
		return nil, fmt.Errorf("%w: %s without value", ErrBadOp, kind)
	}
	return v.Clone()
}

func opFrom(jop jsonpatch.Operation) (string, []string, error) {
	from, err := jop.From()
	if err != nil {
		return "", nil, fmt.Errorf("%w: from: %w", ErrBadOp, err)
	}
	toks, err := parsePointer(from)
	if err != nil {
		return "", nil, err
	}
	return from, toks, nil
}

func add(doc *ir.Node, toks []string, v *ir.Node) (*ir.Node, error) {
	if len(toks) == 0 {
		return v, nil
	}
	parent, last, err := parentOf(doc, toks)
	if err != nil {
		return nil, err
	}
	switch parent.Type() {
	case ir.ObjectType:
		return doc, parent.Set(last, v)
	case ir.ArrayType:
		if last == "-" {
			return doc, parent.Append(v)
		}
		i, err := arrayIndex(last, parent.Len()+1)
		if err != nil {
			return nil, err
		}
		return doc, parent.Insert(i, v)
	}
	return nil, fmt.Errorf("%w: cannot add %q to %s", ErrPatch, last, parent.Kind())
}

func remove(doc *ir.Node, toks []string) (*ir.Node, error) {
	parent, last, err := parentOf(doc, toks)
	if err != nil {
		return nil, err
	}
	switch parent.Type() {
	case ir.ObjectType:
		v, ok := parent.Get(last)
		if !ok {
			return nil, fmt.Errorf("%w: no member %q to remove", ErrPatch, last)
		}
		_, err := parent.Delete(last)
		return v, err
	case ir.ArrayType:
		i, err := arrayIndex(last, parent.Len())
		if err != nil {
			return nil, err
		}
		return parent.RemoveAt(i)
	}
	return nil, fmt.Errorf("%w: cannot remove %q from %s", ErrPatch, last, parent.Kind())
}

// replace sets an existing location. Object members keep their position.
func replace(doc *ir.Node, toks []string, v *ir.Node) (*ir.Node, error) {
	if len(toks) == 0 {
		return v, nil
	}
	parent, last, err := parentOf(doc, toks)
	if err != nil {
		return nil, err
	}
	switch parent.Type() {
	case ir.ObjectType:
		if _, ok := parent.Get(last); !ok {
			return nil, fmt.Errorf("%w: no member %q to replace", ErrPatch, last)
		}
		return doc, parent.Set(last, v)
	case ir.ArrayType:
		i, err := arrayIndex(last, parent.Len())
		if err != nil {
			return nil, err
		}
		return doc, parent.SetIndex(i, v)
	}
	return nil, fmt.Errorf("%w: cannot replace %q in %s", ErrPatch, last, parent.Kind())
}

func parentOf(doc *ir.Node, toks []string) (*ir.Node, string, error) {
	n := len(toks) - 1
	parent, err := lookup(doc, toks[:n])
	if err != nil {
		return nil, "", err
	}
	return parent, toks[n], nil
}

func lookup(doc *ir.Node, toks []string) (*ir.Node, error) {
	cur := doc
	for _, tok := range toks {
		switch cur.Type() {
		case ir.ObjectType:
			v, ok := cur.Get(tok)
			if !ok {
				return nil, fmt.Errorf("%w: no member %q", ErrPatch, tok)
			}
			cur = v
		case ir.ArrayType:
			i, err := arrayIndex(tok, cur.Len())
			if err != nil {
				return nil, err
			}
			cur, _ = cur.At(i)
		default:
			return nil, fmt.Errorf("%w: cannot index %s with %q", ErrPatch, cur.Kind(), tok)
		}
	}
	return cur, nil
}

// Merge applies an RFC 7386 merge patch to a copy of doc. Members of doc
// keep their order; new members follow in patch order.
func Merge(doc, mergePatch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s\non %s\n", debug.Node{Node: mergePatch}, debug.Node{Node: doc})
	}
	res, err := doc.Clone()
	if err != nil {
		return nil, err
	}
	p, err := mergePatch.Clone()
	if err != nil {
		return nil, err
	}
	return mergeValue(res, p)
}

func mergeValue(target, p *ir.Node) (*ir.Node, error) {
	if p.Type() != ir.ObjectType {
		return p, nil
	}
	if target.Type() != ir.ObjectType {
		target = ir.NewObject()
	}
	for k, v := range p.Entries() {
		if v.IsNull() {
			if _, err := target.Delete(k); err != nil {
				return nil, err
			}
			continue
		}
		cur, ok := target.Get(k)
		if !ok {
			cur = ir.Null()
		}
		m, err := mergeValue(cur, v)
		if err != nil {
			return nil, err
		}
		if err := target.Set(k, m); err != nil {
			return nil, err
		}
	}
	return target, nil
}
