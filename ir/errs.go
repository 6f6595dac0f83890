package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrCycle           = errors.New("cycle detected")
)

// TypeMismatchError is returned when a node is not of the kind an
// operation requires. Kinds are type names ("Object", "String", ...) or,
// for exact numeric access, number kinds ("Int32", "Float64", ...).
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch, e.Expected, e.Actual)
}

func mismatch(expected string, n *Node) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Actual: n.Kind()}
}

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d (len %d)", ErrIndexOutOfRange, e.Index, e.Len)
}

// CycleError is returned by operations which visit every node when a
// container is reached again while it is still being visited. Path is
// where the repeat was found.
type CycleError struct {
	Path string
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s at %s", ErrCycle, e.Path)
}
