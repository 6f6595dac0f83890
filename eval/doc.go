// Package eval evaluates expr-lang expressions over documents.
//
// A program sees the document as the variable doc, converted with
// [ToAny]: objects are map[string]any, arrays []any, integers int64 and
// floats float64. The functions getpath, listpath and getenv are also
// available:
//
//	doc.items[0].name
//	len(listpath("$..id"))
//	getpath("$.'a.b'") ?? "none"
//	filter(doc.items, .price > 10)
//
// The result of a program is converted back to a document with
// [FromAny].
package eval
