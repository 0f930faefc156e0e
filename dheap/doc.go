// Package dheap provides an addressable d-ary heap.
//
// Architecture:
//   - 1-based implicit d-ary tree in a flat slice; node i's children are
//     d(i-1)+2 .. d(i-1)+d+1, its parent is (i-2)/d + 1
//   - Addressable: an item -> slot map is kept in sync on every swap, so
//     keys can be updated in O(log_d n) after insertion
//   - Min-heap by default; WithMaxHeap flips the order
//
// The default arity of 4 trades slightly deeper comparisons on the way up
// for much better cache behavior on the way down.
package dheap
