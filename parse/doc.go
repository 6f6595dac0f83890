// Package parse turns JSON text into [ir.Node] trees.
//
// The grammar is RFC 8259 with no extensions. The parser keeps open
// containers on an explicit stack, so nesting depth is limited only by
// memory or the [MaxDepth] option. Errors are *ParseError values which
// locate the failure; a failed parse returns no tree.
package parse
