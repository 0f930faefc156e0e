package dheap

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/rangekit"
)

// DefaultArity is the branching factor used when none is configured.
const DefaultArity = 4

// root is the slot of the top element in the 1-based backing slice.
const root = 1

type entry[I comparable, K constraints.Ordered] struct {
	item I
	key  K
}

// Heap is an addressable d-ary heap of unique items ordered by key.
// Items must be unique; keys need not be.
//
// Heap is not safe for concurrent use.
type Heap[I comparable, K constraints.Ordered] struct {
	entries []entry[I, K] // 1-based; entries[0] is unused
	slots   map[I]int     // item -> slot, maintained on every swap
	arity   int
	maxHeap bool
	logger  *rangekit.Logger
}

// New creates an empty Heap. The zero configuration is a min-heap with
// arity 4.
func New[I comparable, K constraints.Ordered](optFns ...Option) *Heap[I, K] {
	opts := options{
		arity:  DefaultArity,
		logger: rangekit.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Heap[I, K]{
		entries: make([]entry[I, K], 1, opts.capacity+1),
		slots:   make(map[I]int, opts.capacity),
		arity:   opts.arity,
		maxHeap: opts.maxHeap,
		logger:  opts.logger,
	}
}

// Size returns the number of items in the heap.
func (h *Heap[I, K]) Size() int {
	return len(h.entries) - 1
}

// Empty reports whether the heap holds no items.
func (h *Heap[I, K]) Empty() bool {
	return h.Size() == 0
}

// Contains reports whether item is currently in the heap.
func (h *Heap[I, K]) Contains(item I) bool {
	_, ok := h.slots[item]
	return ok
}

// Insert adds item with the given key. The item must not already be in
// the heap.
func (h *Heap[I, K]) Insert(item I, key K) error {
	if _, ok := h.slots[item]; ok {
		return &ErrDuplicateItem{Item: item}
	}

	h.entries = append(h.entries, entry[I, K]{item: item, key: key})
	h.slots[item] = len(h.entries) - 1
	h.siftUp(len(h.entries) - 1)

	h.logger.Debug("insert", "item", item, "key", key, "size", h.Size())

	return nil
}

// Top returns the item at the top of the heap without removing it.
func (h *Heap[I, K]) Top() (I, error) {
	if h.Empty() {
		var zero I
		return zero, ErrEmptyHeap
	}
	return h.entries[root].item, nil
}

// TopKey returns the key of the item at the top of the heap.
func (h *Heap[I, K]) TopKey() (K, error) {
	if h.Empty() {
		var zero K
		return zero, ErrEmptyHeap
	}
	return h.entries[root].key, nil
}

// Pop removes and returns the item at the top of the heap.
func (h *Heap[I, K]) Pop() (I, error) {
	if h.Empty() {
		var zero I
		return zero, ErrEmptyHeap
	}

	top := h.entries[root].item
	delete(h.slots, top)

	last := len(h.entries) - 1
	if last > root {
		h.entries[root] = h.entries[last]
		h.slots[h.entries[root].item] = root
	}
	h.entries[last] = entry[I, K]{}
	h.entries = h.entries[:last]

	if h.Size() > 0 {
		h.siftDown(root)
	}

	h.logger.Debug("pop", "item", top, "size", h.Size())

	return top, nil
}

// UpdateKey changes the key of an item already in the heap and restores
// the heap order.
func (h *Heap[I, K]) UpdateKey(item I, key K) error {
	slot, ok := h.slots[item]
	if !ok {
		return &ErrUnknownItem{Item: item}
	}

	old := h.entries[slot].key
	h.entries[slot].key = key

	// The entry can only have moved against the heap order in one
	// direction.
	if h.keyLess(key, old) {
		h.siftUp(slot)
	} else if h.keyLess(old, key) {
		h.siftDown(slot)
	}

	h.logger.Debug("update_key", "item", item, "key", key)

	return nil
}

func (h *Heap[I, K]) keyLess(a, b K) bool {
	if h.maxHeap {
		return a > b
	}
	return a < b
}

func (h *Heap[I, K]) less(i, j int) bool {
	return h.keyLess(h.entries[i].key, h.entries[j].key)
}

func (h *Heap[I, K]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slots[h.entries[i].item] = i
	h.slots[h.entries[j].item] = j
}

func (h *Heap[I, K]) parent(i int) int {
	return (i-2)/h.arity + 1
}

func (h *Heap[I, K]) firstChild(i int) int {
	return h.arity*(i-1) + 2
}

func (h *Heap[I, K]) siftUp(i int) {
	for i > root {
		p := h.parent(i)
		if !h.less(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[I, K]) siftDown(i int) {
	n := len(h.entries)
	for {
		first := h.firstChild(i)
		if first >= n {
			return
		}

		best := first
		last := first + h.arity
		if last > n {
			last = n
		}
		for c := first + 1; c < last; c++ {
			if h.less(c, best) {
				best = c
			}
		}

		if !h.less(best, i) {
			return
		}
		h.swap(i, best)
		i = best
	}
}
