package segtree

import (
	"github.com/hupe1980/rangekit"
)

// CombineFunc merges the values of two adjacent subranges into the value
// of their union. It must be associative; it does not have to be
// commutative, because the tree always applies it left-to-right.
type CombineFunc[T any] func(left, right T) T

// LeafValueFunc supplies the base value for a single leaf index. It is
// called once per leaf at build time and again for any index passed to
// UpdateAt.
type LeafValueFunc[T any] func(index int) T

// treeRoot is the index of the root node of the implicit 1-based tree.
const treeRoot = 1

// Arithmetic for the in-array binary tree.
func midpoint(left, right int) int { return (left + right) / 2 }
func leftChild(i int) int          { return i << 1 }
func rightChild(i int) int         { return i<<1 | 1 }

// SegmentTree answers range queries over the fixed index range [0, size)
// under a client-supplied associative combine operator, with O(log n)
// queries and point updates.
//
// SegmentTree is not safe for concurrent use.
type SegmentTree[T any] struct {
	tree      []T // 1-based implicit binary tree, 4n+1 cells
	size      int
	combine   CombineFunc[T]
	leafValue LeafValueFunc[T]
	identity  T
	logger    *rangekit.Logger
}

// New builds a SegmentTree of the given size. The combine operator and
// leaf-value generator must be non-nil and size must be positive. identity
// is returned verbatim for empty query ranges and is never combined with
// anything.
//
// Construction eagerly builds the whole tree, calling leafValue once per
// leaf and combine once per internal node.
func New[T any](size int, combine CombineFunc[T], leafValue LeafValueFunc[T], identity T, optFns ...Option) (*SegmentTree[T], error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if combine == nil {
		return nil, ErrNilCombine
	}
	if leafValue == nil {
		return nil, ErrNilLeafValue
	}

	opts := options{
		logger: rangekit.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	// An implicit binary tree with n leaves and straightforward child
	// arithmetic may use indices up to 4n.
	st := &SegmentTree[T]{
		tree:      make([]T, 1+4*size),
		size:      size,
		combine:   combine,
		leafValue: leafValue,
		identity:  identity,
		logger:    opts.logger,
	}

	st.build(treeRoot, 0, size-1)

	st.logger.Debug("segment tree built", "size", size)

	return st, nil
}

// Size returns the size of the underlying index range.
func (st *SegmentTree[T]) Size() int {
	return st.size
}

// build recursively computes the value of the node covering
// [treeL, treeR] from a fresh leafValue call per leaf.
func (st *SegmentTree[T]) build(treeIdx, treeL, treeR int) {
	if treeL == treeR {
		// The node corresponds to a subrange of length 1.
		st.tree[treeIdx] = st.leafValue(treeL)
		return
	}

	mid := midpoint(treeL, treeR)
	left := leftChild(treeIdx)
	right := rightChild(treeIdx)

	st.build(left, treeL, mid)
	st.build(right, mid+1, treeR)

	st.tree[treeIdx] = st.combine(st.tree[left], st.tree[right])
}

// QueryOn returns the combined value of all leaves in [left, right].
//
// An empty range (left > right) yields the identity immediately, without
// any bounds checking. Otherwise the interval must be contained in
// [0, size).
func (st *SegmentTree[T]) QueryOn(left, right int) (T, error) {
	if left > right {
		// empty interval
		return st.identity, nil
	}

	if left < 0 || right >= st.size {
		var zero T
		return zero, &ErrInvalidRange{Left: left, Right: right, Size: st.size}
	}

	return st.determineVal(treeRoot, left, right, 0, st.size-1), nil
}

// determineVal computes the value for [left, right], starting at the node
// treeIdx covering [treeL, treeR]. The query interval is always contained
// in the node's interval.
//
// If the node's interval matches the query exactly its stored value is the
// answer. Otherwise the query lies in one child's interval, or it is split
// at the midpoint and the two child results are combined left-to-right.
func (st *SegmentTree[T]) determineVal(treeIdx, left, right, treeL, treeR int) T {
	if left == treeL && right == treeR {
		return st.tree[treeIdx]
	}

	mid := midpoint(treeL, treeR)
	switch {
	case mid >= right:
		return st.determineVal(leftChild(treeIdx), left, right, treeL, mid)
	case mid+1 <= left:
		return st.determineVal(rightChild(treeIdx), left, right, mid+1, treeR)
	default:
		return st.combine(
			st.determineVal(leftChild(treeIdx), left, mid, treeL, mid),
			st.determineVal(rightChild(treeIdx), mid+1, right, mid+1, treeR),
		)
	}
}

// UpdateAt tells the tree that the underlying value at index idx has
// changed. The new value is obtained from a fresh leafValue(idx) call, and
// every node on the leaf-to-root path is recomputed.
func (st *SegmentTree[T]) UpdateAt(idx int) error {
	if idx < 0 || idx >= st.size {
		return &ErrIndexOutOfRange{Index: idx, Size: st.size}
	}

	if err := st.updateValAt(idx, treeRoot, 0, st.size-1); err != nil {
		return err
	}

	st.logger.Debug("updated", "index", idx)

	return nil
}

func (st *SegmentTree[T]) updateValAt(idx, treeIdx, treeL, treeR int) error {
	if treeL == treeR {
		if treeL != idx {
			// The descent can only land on a mismatched leaf if the tree
			// structure itself is broken.
			return &ErrInternalConsistency{Index: idx, Leaf: treeL}
		}
		st.tree[treeIdx] = st.leafValue(treeL)
		return nil
	}

	mid := midpoint(treeL, treeR)
	left := leftChild(treeIdx)
	right := rightChild(treeIdx)

	if mid >= idx {
		if err := st.updateValAt(idx, left, treeL, mid); err != nil {
			return err
		}
	} else {
		if err := st.updateValAt(idx, right, mid+1, treeR); err != nil {
			return err
		}
	}

	st.tree[treeIdx] = st.combine(st.tree[left], st.tree[right])

	return nil
}
