package disjointset

import (
	"github.com/hupe1980/rangekit"
	"github.com/hupe1980/rangekit/internal/dynarray"
)

// absent marks parent slots for elements never added via MakeSet.
// Parent links are always non-negative, so -1 can never collide.
const absent = -1

// defaultCapacity sizes the internal arrays when no hint is given.
const defaultCapacity = 100

// DisjointSet tracks a partition of a growing universe of non-negative
// integer elements into disjoint subsets. Subsets can be merged but never
// split, and elements can be added but never removed.
//
// DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	forest      *dynarray.Array[int] // parent links; forest[e] == e marks a root
	rank        *dynarray.Array[int] // rank per element, meaningful only for roots
	subsetCount int
	logger      *rangekit.Logger
}

// New creates a DisjointSet whose universe initially holds the elements
// 0..initialSize-1, each in its own singleton subset. An initialSize of 0
// creates an empty universe.
func New(initialSize int, optFns ...Option) (*DisjointSet, error) {
	if initialSize < 0 {
		return nil, ErrNegativeElement
	}

	opts := options{
		capacityHint: defaultCapacity,
		logger:       rangekit.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	capacity := opts.capacityHint
	if initialSize > capacity {
		capacity = initialSize
	}

	ds := &DisjointSet{
		forest: dynarray.New(capacity, absent),
		rank:   dynarray.New(capacity, 0),
		logger: opts.logger,
	}

	for e := 0; e < initialSize; e++ {
		if err := ds.MakeSet(e); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// MakeSet adds a new element to the universe, starting in its own
// singleton subset. The element must be non-negative and not already
// present.
func (ds *DisjointSet) MakeSet(element int) error {
	if element < 0 {
		return ErrNegativeElement
	}
	if ds.present(element) {
		return &ErrDuplicateElement{Element: element}
	}

	ds.forest.Set(element, element)
	ds.rank.Set(element, 0)
	ds.subsetCount++

	ds.logger.Debug("make_set", "element", element, "subsets", ds.subsetCount)

	return nil
}

// Find returns the canonical representative of the subset containing
// element. Two elements are in the same subset exactly when Find returns
// the same representative for both.
//
// Find applies path halving on the way up, so lookups flatten the tree as
// a side effect.
func (ds *DisjointSet) Find(element int) (int, error) {
	if err := ds.checkMembership(element); err != nil {
		return 0, err
	}
	return ds.findRoot(element), nil
}

// findRoot walks to the root with path halving: every node on the path is
// pointed at its grandparent and the walk advances two links at a time.
// See Tarjan and van Leeuwen p 252.
func (ds *DisjointSet) findRoot(element int) int {
	x := element
	for {
		parent := ds.forest.Get(x)
		grandparent := ds.forest.Get(parent)
		if grandparent == parent {
			return parent
		}
		ds.forest.Set(x, grandparent)
		x = grandparent
	}
}

// Unite merges the subsets containing a and b. If they are already in the
// same subset this is a no-op. Both elements must be present and distinct.
func (ds *DisjointSet) Unite(a, b int) error {
	if err := ds.checkMembership(a); err != nil {
		return err
	}
	if err := ds.checkMembership(b); err != nil {
		return err
	}
	if a == b {
		return ErrSelfUnion
	}

	rootA := ds.findRoot(a)
	rootB := ds.findRoot(b)

	if rootA == rootB {
		return nil // already united
	}

	ds.linkRoots(rootA, rootB)

	ds.logger.Debug("unite", "a", a, "b", b, "subsets", ds.subsetCount)

	return nil
}

// linkRoots attaches one root under the other, guided by rank so the
// resulting tree stays shallow. Both arguments must be distinct roots.
func (ds *DisjointSet) linkRoots(rootA, rootB int) {
	rankA := ds.rank.Get(rootA)
	rankB := ds.rank.Get(rootB)

	switch {
	case rankA > rankB:
		ds.forest.Set(rootB, rootA)
	case rankA == rankB:
		ds.forest.Set(rootB, rootA)
		ds.rank.Set(rootA, rankA+1)
	default:
		ds.forest.Set(rootA, rootB)
	}

	ds.subsetCount--
}

// SameSubset reports whether a and b are currently in the same subset.
// Both elements must be present.
func (ds *DisjointSet) SameSubset(a, b int) (bool, error) {
	rootA, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := ds.Find(b)
	if err != nil {
		return false, err
	}
	return rootA == rootB, nil
}

// SubsetCount returns the number of disjoint subsets the universe is
// currently partitioned into.
func (ds *DisjointSet) SubsetCount() int {
	return ds.subsetCount
}

// present reports whether element has ever been added via MakeSet.
func (ds *DisjointSet) present(element int) bool {
	return element >= 0 && ds.forest.Get(element) != absent
}

func (ds *DisjointSet) checkMembership(element int) error {
	if element < 0 {
		return ErrNegativeElement
	}
	if !ds.present(element) {
		return &ErrUnknownElement{Element: element}
	}
	return nil
}
