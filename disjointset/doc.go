// Package disjointset provides a disjoint-set (union-find) forest over a
// growable universe of non-negative integer elements.
//
// Architecture:
//   - One parent link and one rank per element, stored in growable
//     sentinel-filled arrays
//   - Path halving on find, union by rank on unite (Tarjan & van Leeuwen,
//     1984), giving amortized near-constant cost per operation
//   - Elements are only ever added and subsets only ever merge; there is
//     no removal and no split
//
// Typical uses:
//   - Connected components over streams of edges
//   - Kruskal-style cycle detection
//   - Equivalence-class bookkeeping
package disjointset
