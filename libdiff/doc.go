// Package libdiff computes structural differences between documents.
//
// [Diff] produces a JSON Patch (RFC 6902) made of add, remove and
// replace operations. Applying the operations in order to the first
// document yields a document equal to the second. Array elements are
// aligned with a sequence diff over per-element summaries, so an
// insertion in the middle of an array is one add and not a cascade of
// replacements.
//
// [DiffText] renders a line or character diff of two strings.
package libdiff
