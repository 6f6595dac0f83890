// Package format names the output choices shared by encode and the jdoc
// tool: the layout [Style] of JSON text and the output [Format].
//
// # Usage
//
//	style, err := format.ParseStyle("indented")
//	out, err := encode.EncodeString(node, encode.EncodeStyle(style))
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/encode - Encode IR to text
package format
