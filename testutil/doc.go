// Package testutil provides testing utilities for vecshard.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random fixtures.
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.IntSlice(1000)
//	words := rng.StringSlice(100, 8)
package testutil
