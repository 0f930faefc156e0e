// Package dynarray implements a growable, integer-indexed array whose
// unwritten slots read back as a caller-chosen default value.
package dynarray

// Array is a contiguous, amortized-growth array of T. Writing past the end
// grows the backing slice and fills every newly created slot with the
// default value, so reads of untouched indices are well defined.
//
// Growth may relocate the backing slice, so callers must not retain raw
// aliases into it across a Set that can grow.
type Array[T any] struct {
	items      []T
	defaultVal T
}

// New creates an Array with the given initial length. All initial slots
// hold defaultVal.
func New[T any](initialSize int, defaultVal T) *Array[T] {
	items := make([]T, initialSize)
	for i := range items {
		items[i] = defaultVal
	}
	return &Array[T]{
		items:      items,
		defaultVal: defaultVal,
	}
}

// Get returns the value at index i, or the default value if i has never
// been inside the array's bounds.
func (a *Array[T]) Get(i int) T {
	if i >= len(a.items) {
		return a.defaultVal
	}
	return a.items[i]
}

// Set stores v at index i, growing the array as needed.
func (a *Array[T]) Set(i int, v T) {
	if i >= len(a.items) {
		a.grow(i)
	}
	a.items[i] = v
}

// Len returns the current length of the backing array.
func (a *Array[T]) Len() int {
	return len(a.items)
}

func (a *Array[T]) grow(index int) {
	newSize := len(a.items)
	for newSize <= index {
		// 8/5 gives Fibonacci-like growth; the +8 keeps small arrays from
		// reallocating too often.
		newSize = 8*newSize/5 + 8
	}

	grown := make([]T, newSize)
	n := copy(grown, a.items)
	for i := n; i < newSize; i++ {
		grown[i] = a.defaultVal
	}
	a.items = grown
}
