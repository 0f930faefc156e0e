package dheap

import (
	"errors"
	"fmt"
)

// ErrEmptyHeap is returned when Top, TopKey or Pop is called on an empty
// heap.
var ErrEmptyHeap = errors.New("heap is empty")

// ErrDuplicateItem indicates an Insert call for an item already in the
// heap.
type ErrDuplicateItem struct {
	Item any
}

func (e *ErrDuplicateItem) Error() string {
	return fmt.Sprintf("item %v already in the heap", e.Item)
}

// ErrUnknownItem indicates a reference to an item not in the heap.
type ErrUnknownItem struct {
	Item any
}

func (e *ErrUnknownItem) Error() string {
	return fmt.Sprintf("item %v is not in the heap", e.Item)
}
