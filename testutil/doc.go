// Package testutil provides testing utilities for unitgo.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random source that produces magnitudes, exponent vectors and
// quantities for property-style tests.
//
//	rng := testutil.NewRNG(seed)
//	d := rng.Dimension()            // random exponent vector
//	q := rng.Quantity(d)            // random magnitude tagged with d
//	a := rng.Angle()                // random angle in [-2π, 2π)
package testutil
