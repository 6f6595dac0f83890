// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of [*Node]. Every node is one of null, boolean,
// number, string, object or array. Objects keep their keys in insertion
// order and arrays are indexed from 0. The representation carries no
// position information from input documents.
//
// # Numbers
//
// A number remembers the representation it was created with, one of
// [Int32], [Int64], [Float32] or [Float64]. Exact accessors such as
// [Node.AsInt32] only succeed for the matching kind while [Node.AsNumber]
// converts any kind to float64. Equality compares numbers by value:
// integers exactly, at float32 precision when either side is a Float32
// and at float64 precision otherwise.
//
// # Sharing and Cycles
//
// Leaves are immutable and may be shared freely. Containers are mutable
// and are identified by pointer. A container may appear several times in
// one document, and may even contain itself. Nodes have no parent
// pointers.
//
// [Walk] is the traversal shared by equality, hashing, copying and
// encoding. It keeps its state on an explicit stack, so documents nested
// hundreds of thousands of levels deep are handled without growing the
// goroutine stack, and it reports a [*CycleError] when a container is
// reached from inside itself. Sharing without a cycle is not an error.
//
// # Concurrency
//
// Nodes hold no locks. Read-only operations ([Walk], [Equal], [Node.Hash],
// [Node.Clone] and encoding) may run concurrently on a tree nobody is
// mutating.
//
// # Paths
//
// [Node.GetPath] and [Node.ListPath] select nodes with a small subset of
// JSONPath: $, .field, .'quoted field', [index], [*] and .. for every
// descendant.
package ir
