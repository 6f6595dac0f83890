package ir

import "errors"

var errNotEqual = errors.New("not equal")

// Equal reports whether a and b are structurally equal. Objects are equal
// when they have the same keys with equal values, in any order. Arrays
// are equal element by element. Numbers compare by value across kinds.
// A container compared with itself is equal without being visited.
//
// Equal returns a *CycleError if it must descend into a cycle in either
// argument.
func Equal(a, b *Node) (bool, error) {
	var (
		bs     []*Node
		bOnPat = map[*Node]struct{}{}
	)
	err := Walk(a, func(x *Node, e Edge, isPost bool) (bool, error) {
		if isPost {
			top := bs[len(bs)-1]
			bs = bs[:len(bs)-1]
			delete(bOnPat, top)
			return false, nil
		}
		y := orNull(b)
		if e.Parent != nil {
			p := bs[len(bs)-1]
			var ok bool
			if p.typ == ObjectType {
				y, ok = p.Get(e.Key)
			} else {
				y, ok = p.At(e.Index)
			}
			if !ok {
				return false, errNotEqual
			}
		}
		if x == y {
			return false, nil
		}
		if !shallowEqual(x, y) {
			return false, errNotEqual
		}
		if x.IsLeaf() {
			return false, nil
		}
		if _, ok := bOnPat[y]; ok {
			return false, &CycleError{Path: e.Path()}
		}
		bOnPat[y] = struct{}{}
		bs = append(bs, y)
		return true, nil
	})
	if errors.Is(err, errNotEqual) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// shallowEqual compares leaves fully and containers by type and length.
func shallowEqual(x, y *Node) bool {
	if x.Type() != y.Type() {
		return false
	}
	if x.IsLeaf() {
		return leafEqual(x, y)
	}
	return len(x.values) == len(y.values)
}

func leafEqual(x, y *Node) bool {
	if x.Type() != y.Type() {
		return false
	}
	switch x.Type() {
	case NullType:
		return true
	case BoolType:
		return x.b == y.b
	case StringType:
		return x.s == y.s
	case NumberType:
		return numbersEqual(x.num, y.num)
	}
	return false
}
