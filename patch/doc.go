// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to [ir.Node] trees.
//
// Operations are decoded with github.com/evanphx/json-patch and applied
// to a clone of the input, so the result never shares containers with
// it. Members keep their order and numbers keep their kind; new members
// are appended.
package patch
