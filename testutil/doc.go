// Package testutil provides testing utilities for keyhash.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating reproducible hash
// inputs, plus helpers for checking how digests spread across buckets.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(1024)          // one random input
//	keys := rng.Keys(10_000, 4, 32)  // distinct keys, varied lengths
//
// # Distribution Checks
//
//	counts := testutil.BucketCounts(digests, 64)
package testutil
