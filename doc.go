// Package rangekit provides in-memory partition and range-query data
// structures for Go.
//
// The interesting work lives in the subpackages; this package only carries
// the shared logging surface and the documentation below.
//
//   - disjointset: a disjoint-set (union-find) forest over a growable
//     universe of non-negative integer elements, with path halving and
//     union by rank.
//   - segtree: a generic segment tree over a fixed index range with a
//     client-supplied associative combine operator, O(log n) range queries
//     and point updates, plus ready-made max/sum/index-of-max variants.
//   - dheap: an addressable d-ary heap with updatable keys.
//
// # Quick Start
//
// Connected components with a disjoint-set forest:
//
//	ds, _ := disjointset.New(5)
//	_ = ds.Unite(0, 1)
//	_ = ds.Unite(1, 2)
//	same, _ := ds.SameSubset(0, 2) // true
//	n := ds.SubsetCount()          // 3
//
// Range sums with a segment tree:
//
//	data := []int{3, 1, 4, 1, 5, 9, 2, 6}
//	st, _ := segtree.NewSum(len(data), func(i int) int { return data[i] })
//	total, _ := st.QueryOn(2, 5) // 19
//	data[3] = 100
//	_ = st.UpdateAt(3)
//
// # Concurrency Model
//
// Every structure in this module is single-threaded by contract: operations
// run to completion synchronously and no internal locking is performed.
// Callers sharing an instance across goroutines must serialize access
// themselves, for example with one mutex per instance.
//
// # Error Handling
//
// Preconditions are checked before any mutation, so a failed call leaves
// the structure unchanged. Each subpackage exposes its error kinds as
// sentinel values or typed structs; match them with errors.Is and
// errors.As.
package rangekit
