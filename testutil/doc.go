// Package testutil provides testing utilities for cbir.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random data, synthetic images, on-disk fixtures and
// an exact top-N reference ranking.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vec := rng.UniformVector(512)
//	img := rng.NoiseImage(32, 32)
//
// # Fixtures
//
//	testutil.WritePNG(t, dir, "red.png", feature.Solid(8, 8, 255, 0, 0))
//	testutil.WriteCSV(t, dir, "features.csv", rows)
//
// # Ground Truth
//
//	want := testutil.BruteForceTopN(target, vectors, n, distance.Cosine)
package testutil
