package testutil

import (
	"math/rand"
)

// RNG encapsulates a seeded random number generator so randomized tests
// are reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Intn returns a uniform value in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Interval returns a uniform non-empty subinterval [left, right] of
// [0, n).
func (r *RNG) Interval(n int) (left, right int) {
	a := r.rand.Intn(n)
	b := r.rand.Intn(n)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// PartitionOracle is a naive quick-find partition used as ground truth in
// disjoint-set tests. Union is O(n) per call, which is fine at test sizes.
type PartitionOracle struct {
	label map[int]int
	next  int
}

// NewPartitionOracle creates an empty oracle.
func NewPartitionOracle() *PartitionOracle {
	return &PartitionOracle{
		label: make(map[int]int),
	}
}

// Contains reports whether e has been added.
func (p *PartitionOracle) Contains(e int) bool {
	_, ok := p.label[e]
	return ok
}

// Add puts e in its own singleton subset. Adding a present element is a
// no-op.
func (p *PartitionOracle) Add(e int) {
	if p.Contains(e) {
		return
	}
	p.label[e] = p.next
	p.next++
}

// Union merges the subsets containing a and b by relabeling.
func (p *PartitionOracle) Union(a, b int) {
	la, lb := p.label[a], p.label[b]
	if la == lb {
		return
	}
	for e, l := range p.label {
		if l == lb {
			p.label[e] = la
		}
	}
}

// Connected reports whether a and b are in the same subset.
func (p *PartitionOracle) Connected(a, b int) bool {
	return p.label[a] == p.label[b]
}

// SetCount returns the number of distinct subsets.
func (p *PartitionOracle) SetCount() int {
	seen := make(map[int]struct{}, len(p.label))
	for _, l := range p.label {
		seen[l] = struct{}{}
	}
	return len(seen)
}
