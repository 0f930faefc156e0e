package segtree

import (
	"golang.org/x/exp/constraints"
)

// Number is the constraint for summable leaf values.
type Number interface {
	constraints.Integer | constraints.Float
}

// IndexedValue pairs a leaf index with its value. It is the node type of
// trees built by NewIndexOfMax.
type IndexedValue[T constraints.Ordered] struct {
	Index int
	Value T
}

// NewSum builds a segment tree answering range-sum queries. The identity
// is zero.
func NewSum[T Number](size int, leafValue LeafValueFunc[T], optFns ...Option) (*SegmentTree[T], error) {
	combine := func(left, right T) T { return left + right }

	var zero T
	return New(size, combine, leafValue, zero, optFns...)
}

// NewMax builds a segment tree answering range-maximum queries. identity
// is returned for empty ranges and must compare less than or equal to
// every leaf value (e.g. math.Inf(-1) for floats, math.MinInt for ints).
func NewMax[T constraints.Ordered](size int, leafValue LeafValueFunc[T], identity T, optFns ...Option) (*SegmentTree[T], error) {
	combine := func(left, right T) T {
		if right > left {
			return right
		}
		return left
	}

	return New(size, combine, leafValue, identity, optFns...)
}

// NewIndexOfMax builds a segment tree whose queries return the leftmost
// index at which the range maximum occurs, together with that maximum.
// identity follows the same contract as in NewMax; empty queries report it
// with Index -1.
func NewIndexOfMax[T constraints.Ordered](size int, leafValue LeafValueFunc[T], identity T, optFns ...Option) (*SegmentTree[IndexedValue[T]], error) {
	// Ties go to the left operand, which is always the lower index range.
	combine := func(left, right IndexedValue[T]) IndexedValue[T] {
		if right.Value > left.Value {
			return right
		}
		return left
	}

	leaf := func(i int) IndexedValue[T] {
		return IndexedValue[T]{Index: i, Value: leafValue(i)}
	}

	id := IndexedValue[T]{Index: -1, Value: identity}

	return New(size, combine, leaf, id, optFns...)
}
