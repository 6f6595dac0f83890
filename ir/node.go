package ir

import (
	"iter"
	"maps"
	"slices"
)

// Node is one value of a JSON document. Leaves (null, booleans, numbers
// and strings) are immutable after construction. Objects and arrays are
// mutable and are identified by their pointer: the same container may be
// held by several parents, and nothing prevents a container from holding
// one of its ancestors. Operations which visit every node reject such
// cycles with a *CycleError.
//
// A nil *Node reads as null.
type Node struct {
	typ Type
	b   bool
	s   string
	num Number

	// objects: keys[i] maps to values[i]; index maps keys to positions.
	keys   []string
	index  map[string]int
	values []*Node
}

var (
	nullNode  = &Node{typ: NullType}
	trueNode  = &Node{typ: BoolType, b: true}
	falseNode = &Node{typ: BoolType}
)

// Null returns the null node. Leaves are immutable so it is shared.
func Null() *Node {
	return nullNode
}

func FromBool(v bool) *Node {
	if v {
		return trueNode
	}
	return falseNode
}

func FromString(v string) *Node {
	return &Node{typ: StringType, s: v}
}

func FromNumber(n Number) *Node {
	return &Node{typ: NumberType, num: n}
}

func FromInt32(v int32) *Node     { return FromNumber(Int32Number(v)) }
func FromInt64(v int64) *Node     { return FromNumber(Int64Number(v)) }
func FromFloat32(v float32) *Node { return FromNumber(Float32Number(v)) }
func FromFloat64(v float64) *Node { return FromNumber(Float64Number(v)) }

// FromInt stores v as an Int32 when it fits and as an Int64 otherwise.
func FromInt(v int64) *Node {
	return FromNumber(IntNumber(v))
}

func NewObject() *Node {
	return &Node{typ: ObjectType, index: map[string]int{}}
}

func NewArray(vs ...*Node) *Node {
	return FromSlice(vs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object in the order of kvs. A repeated key
// replaces the earlier value and keeps the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		typ:    ObjectType,
		keys:   make([]string, 0, len(kvs)),
		values: make([]*Node, 0, len(kvs)),
		index:  make(map[string]int, len(kvs)),
	}
	for _, kv := range kvs {
		res.set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with its keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		typ:    ObjectType,
		keys:   slices.Sorted(maps.Keys(m)),
		values: make([]*Node, len(m)),
		index:  make(map[string]int, len(m)),
	}
	for i, k := range res.keys {
		res.index[k] = i
		res.values[i] = orNull(m[k])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{typ: ArrayType, values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.values[i] = orNull(v)
	}
	return res
}

func orNull(y *Node) *Node {
	if y == nil {
		return nullNode
	}
	return y
}

func (y *Node) Type() Type {
	if y == nil {
		return NullType
	}
	return y.typ
}

// Kind is the type name, or the number kind for numbers.
func (y *Node) Kind() string {
	if y.Type() == NumberType {
		return y.num.kind.String()
	}
	return y.Type().String()
}

func (y *Node) IsLeaf() bool {
	return y.Type().IsLeaf()
}

// Len is the number of entries of an object or elements of an array, and
// 0 for leaves.
func (y *Node) Len() int {
	if y.IsLeaf() {
		return 0
	}
	return len(y.values)
}

// Keys returns a copy of the object's keys in order.
func (y *Node) Keys() []string {
	if y.Type() != ObjectType {
		return nil
	}
	return slices.Clone(y.keys)
}

// Values returns a copy of the children of an object or array in order.
func (y *Node) Values() []*Node {
	if y.IsLeaf() {
		return nil
	}
	return slices.Clone(y.values)
}

func (y *Node) Get(key string) (*Node, bool) {
	if y.Type() != ObjectType {
		return nil, false
	}
	i, ok := y.index[key]
	if !ok {
		return nil, false
	}
	return y.values[i], true
}

func (y *Node) At(i int) (*Node, bool) {
	if y.Type() != ArrayType || i < 0 || i >= len(y.values) {
		return nil, false
	}
	return y.values[i], true
}

// Entries iterates an object's entries in order. It yields nothing for
// other types.
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if y.Type() != ObjectType {
			return
		}
		for i, k := range y.keys {
			if !yield(k, y.values[i]) {
				return
			}
		}
	}
}

// Elements iterates an array's elements in order.
func (y *Node) Elements() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if y.Type() != ArrayType {
			return
		}
		for i, v := range y.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// child returns the i'th child of a container along with its key.
func (y *Node) child(i int) (string, *Node) {
	if y.typ == ObjectType {
		return y.keys[i], y.values[i]
	}
	return "", y.values[i]
}

// Set inserts or replaces the value at key. A replaced entry keeps its
// position. A nil v is stored as null.
func (y *Node) Set(key string, v *Node) error {
	if y.Type() != ObjectType {
		return mismatch("Object", y)
	}
	y.set(key, v)
	return nil
}

func (y *Node) set(key string, v *Node) {
	v = orNull(v)
	if y.index == nil {
		y.index = make(map[string]int, len(y.keys))
		for i, k := range y.keys {
			y.index[k] = i
		}
	}
	if i, ok := y.index[key]; ok {
		y.values[i] = v
		return
	}
	y.index[key] = len(y.keys)
	y.keys = append(y.keys, key)
	y.values = append(y.values, v)
}

// Delete removes key, reporting whether it was present.
func (y *Node) Delete(key string) (bool, error) {
	if y.Type() != ObjectType {
		return false, mismatch("Object", y)
	}
	i, ok := y.index[key]
	if !ok {
		return false, nil
	}
	delete(y.index, key)
	y.keys = slices.Delete(y.keys, i, i+1)
	y.values = slices.Delete(y.values, i, i+1)
	for j := i; j < len(y.keys); j++ {
		y.index[y.keys[j]] = j
	}
	return true, nil
}

// SetIndex replaces the element at i. Arrays are not extended: i must be
// in [0, Len()).
func (y *Node) SetIndex(i int, v *Node) error {
	if y.Type() != ArrayType {
		return mismatch("Array", y)
	}
	if i < 0 || i >= len(y.values) {
		return &IndexError{Index: i, Len: len(y.values)}
	}
	y.values[i] = orNull(v)
	return nil
}

func (y *Node) Append(vs ...*Node) error {
	if y.Type() != ArrayType {
		return mismatch("Array", y)
	}
	for _, v := range vs {
		y.values = append(y.values, orNull(v))
	}
	return nil
}

// Insert places v before the element at i; i == Len() appends.
func (y *Node) Insert(i int, v *Node) error {
	if y.Type() != ArrayType {
		return mismatch("Array", y)
	}
	if i < 0 || i > len(y.values) {
		return &IndexError{Index: i, Len: len(y.values)}
	}
	y.values = slices.Insert(y.values, i, orNull(v))
	return nil
}

func (y *Node) RemoveAt(i int) (*Node, error) {
	if y.Type() != ArrayType {
		return nil, mismatch("Array", y)
	}
	if i < 0 || i >= len(y.values) {
		return nil, &IndexError{Index: i, Len: len(y.values)}
	}
	res := y.values[i]
	y.values = slices.Delete(y.values, i, i+1)
	return res, nil
}

// RemoveFirst removes the first element matching v. Leaves match by
// value; containers match only themselves.
func (y *Node) RemoveFirst(v *Node) (bool, error) {
	if y.Type() != ArrayType {
		return false, mismatch("Array", y)
	}
	v = orNull(v)
	i := slices.IndexFunc(y.values, func(e *Node) bool {
		if e == v {
			return true
		}
		return v.IsLeaf() && e.IsLeaf() && leafEqual(e, v)
	})
	if i < 0 {
		return false, nil
	}
	y.values = slices.Delete(y.values, i, i+1)
	return true, nil
}

func (y *Node) AsObject() (*Node, bool) {
	if y.Type() != ObjectType {
		return nil, false
	}
	return y, true
}

func (y *Node) AsArray() (*Node, bool) {
	if y.Type() != ArrayType {
		return nil, false
	}
	return y, true
}

func (y *Node) AsString() (string, bool) {
	if y.Type() != StringType {
		return "", false
	}
	return y.s, true
}

func (y *Node) AsBool() (bool, bool) {
	if y.Type() != BoolType {
		return false, false
	}
	return y.b, true
}

func (y *Node) IsNull() bool {
	return y.Type() == NullType
}

// AsNumber widens any number kind to float64.
func (y *Node) AsNumber() (float64, bool) {
	if y.Type() != NumberType {
		return 0, false
	}
	return y.num.Float64(), true
}

func (y *Node) AsNumberValue() (Number, bool) {
	if y.Type() != NumberType {
		return Number{}, false
	}
	return y.num, true
}

func (y *Node) AsInt32() (int32, bool) {
	if y.Type() != NumberType {
		return 0, false
	}
	return y.num.AsInt32()
}

func (y *Node) AsInt64() (int64, bool) {
	if y.Type() != NumberType {
		return 0, false
	}
	return y.num.AsInt64()
}

func (y *Node) AsFloat32() (float32, bool) {
	if y.Type() != NumberType {
		return 0, false
	}
	return y.num.AsFloat32()
}

func (y *Node) AsFloat64() (float64, bool) {
	if y.Type() != NumberType {
		return 0, false
	}
	return y.num.AsFloat64()
}

func (y *Node) RequireObject() (*Node, error) {
	if v, ok := y.AsObject(); ok {
		return v, nil
	}
	return nil, mismatch("Object", y)
}

func (y *Node) RequireArray() (*Node, error) {
	if v, ok := y.AsArray(); ok {
		return v, nil
	}
	return nil, mismatch("Array", y)
}

func (y *Node) RequireString() (string, error) {
	if v, ok := y.AsString(); ok {
		return v, nil
	}
	return "", mismatch("String", y)
}

func (y *Node) RequireBool() (bool, error) {
	if v, ok := y.AsBool(); ok {
		return v, nil
	}
	return false, mismatch("Bool", y)
}

func (y *Node) RequireNumber() (Number, error) {
	if v, ok := y.AsNumberValue(); ok {
		return v, nil
	}
	return Number{}, mismatch("Number", y)
}

func (y *Node) RequireInt32() (int32, error) {
	if v, ok := y.AsInt32(); ok {
		return v, nil
	}
	return 0, mismatch(Int32.String(), y)
}

func (y *Node) RequireInt64() (int64, error) {
	if v, ok := y.AsInt64(); ok {
		return v, nil
	}
	return 0, mismatch(Int64.String(), y)
}

func (y *Node) RequireFloat32() (float32, error) {
	if v, ok := y.AsFloat32(); ok {
		return v, nil
	}
	return 0, mismatch(Float32.String(), y)
}

func (y *Node) RequireFloat64() (float64, error) {
	if v, ok := y.AsFloat64(); ok {
		return v, nil
	}
	return 0, mismatch(Float64.String(), y)
}
