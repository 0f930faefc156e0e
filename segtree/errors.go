package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a tree is constructed with size < 1.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrNilCombine is returned when no combine operator is supplied.
	ErrNilCombine = errors.New("combine must be non-nil")
	// ErrNilLeafValue is returned when no leaf-value generator is supplied.
	ErrNilLeafValue = errors.New("leaf value generator must be non-nil")
)

// ErrInvalidRange indicates a query interval that is not contained in
// [0, size).
type ErrInvalidRange struct {
	Left  int
	Right int
	Size  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("bad query interval %d..%d (size = %d)", e.Left, e.Right, e.Size)
}

// ErrIndexOutOfRange indicates an update index outside [0, size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("cannot update value at index %d, size = %d", e.Index, e.Size)
}

// ErrInternalConsistency indicates a broken tree invariant. It is not
// expected to occur under correct use; a tree that has reported it may be
// inconsistent and must not be used further.
type ErrInternalConsistency struct {
	Index int
	Leaf  int
}

func (e *ErrInternalConsistency) Error() string {
	return fmt.Sprintf("internal consistency failure: reached leaf %d while updating index %d", e.Leaf, e.Index)
}
