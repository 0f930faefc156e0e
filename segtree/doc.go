// Package segtree provides a generic segment tree: an implicit binary tree
// over a fixed index range [0, n) supporting O(log n) range queries and
// point updates.
//
// Architecture:
//   - 1-based implicit tree in a flat array of 4n+1 cells; node i's
//     children are 2i and 2i+1, node 1 covers the whole range
//   - Client-supplied associative combine operator and leaf-value
//     generator, invoked synchronously; combine is always applied in
//     left-to-right order so non-commutative operators are deterministic
//   - Eager recursive build at construction, O(n) total
//
// The generic template is instantiated by New; NewMax, NewSum and
// NewIndexOfMax are ready-made variants for the common cases.
package segtree
