// Package encode writes [ir.Node] trees as JSON text, or as YAML.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// indented, colored, one trailing newline
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeStyle(format.Indented),
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.TrailingNewline(true))
//
// The compact style has no whitespace at all. The indented style puts
// every member of a non-empty container on its own line. Empty
// containers are always written as {} and [].
//
// Encoding traverses with [ir.Walk]: deeply nested documents are encoded
// without recursion and cyclic ones fail with an [*ir.CycleError]. Output
// written before an error is not valid JSON.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - document representation
//   - github.com/signadot/jsondoc/parse - parse text to ir
package encode
