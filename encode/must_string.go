package encode

import (
	"bytes"

	"github.com/signadot/jsondoc/ir"
)

// EncodeString returns the encoding of node as a string.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString returns the compact encoding of node and panics if node
// cannot be encoded.
func MustString(node *ir.Node) string {
	s, err := EncodeString(node)
	if err != nil {
		panic(err)
	}
	return s
}
