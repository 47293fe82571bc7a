// Package testutil provides testing utilities for bitkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible random source for generating packed bit
// buffers, bit patterns and operation sequences.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(64)          // 64 random bytes
//	bits := rng.Bits(100)         // 100 random bools
//	packed := testutil.Pack(bits) // LSB-first packed form of bits
//
// Failing property tests should log rng.Seed() so the run can be replayed.
package testutil
