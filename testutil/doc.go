// Package testutil provides testing utilities for imagematch.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for grayscale images, perturbed training
// views and raw descriptor words.
//
// # Images
//
//	rng := testutil.NewRNG(seed)
//	img := rng.NoiseImage(64, 64)             // uniform noise
//	view := rng.Perturb(img, 1.2, 10, 3)      // contrast, brightness, noise
//	flat := testutil.ConstantImage(32, 32, 9) // degenerate input
//
// # Descriptors
//
//	words := rng.Words() // [5]uint64, convertible to patch.Descriptor
package testutil
