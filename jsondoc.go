// Package jsondoc parses, compares, copies, diffs and serializes JSON
// documents.
//
// It gathers the most used entry points of the packages below it:
//
//   - parse: text to [ir.Node] trees
//   - ir: the tree itself, equality, hashing and copying
//   - encode: trees to text
//   - libdiff and patch: JSON Patch computation and application
package jsondoc

import (
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/patch"
)

func Parse(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(text, opts...)
}

func ParseObject(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseObject([]byte(text), opts...)
}

func ParseArray(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseArray([]byte(text), opts...)
}

// ParseString parses a document consisting of one JSON string and
// returns its value.
func ParseString(text string, opts ...parse.ParseOption) (string, error) {
	return parse.ParseStringValue([]byte(text), opts...)
}

func ParseNumber(text string, opts ...parse.ParseOption) (ir.Number, error) {
	return parse.ParseNumber([]byte(text), opts...)
}

func ParseBool(text string, opts ...parse.ParseOption) (bool, error) {
	return parse.ParseBool([]byte(text), opts...)
}

// Serialize renders v in the given style with no trailing newline.
func Serialize(v *ir.Node, style format.Style) (string, error) {
	return encode.EncodeString(v, encode.EncodeStyle(style))
}

func DeepEqual(a, b *ir.Node) (bool, error) {
	return ir.Equal(a, b)
}

func DeepHash(v *ir.Node) (uint64, error) {
	return v.Hash()
}

func DeepCopy(v *ir.Node) (*ir.Node, error) {
	return v.Clone()
}

// Diff returns the JSON Patch transforming from into to, as a document.
func Diff(from, to *ir.Node) (*ir.Node, error) {
	p, err := libdiff.Diff(from, to)
	if err != nil {
		return nil, err
	}
	return p.Node(), nil
}

// Patch applies a JSON Patch document to doc, leaving doc unchanged.
func Patch(doc, ops *ir.Node) (*ir.Node, error) {
	return patch.Apply(doc, ops)
}

// MergePatch applies a JSON Merge Patch to doc, leaving doc unchanged.
func MergePatch(doc, mergePatch *ir.Node) (*ir.Node, error) {
	return patch.Merge(doc, mergePatch)
}
