// Package testutil provides testing utilities for rangekit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and a naive quick-find
// partition oracle used as ground truth for the disjoint-set forest.
//
// # Randomized Inputs
//
//	rng := testutil.NewRNG(seed)
//	left, right := rng.Interval(n) // random subinterval of [0, n)
//
// # Ground Truth
//
//	oracle := testutil.NewPartitionOracle()
//	oracle.Add(3)
//	oracle.Union(3, 7)
//	connected := oracle.Connected(3, 7)
package testutil
