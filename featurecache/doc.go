// Package featurecache loads precomputed per-image feature vectors.
//
// A cache is a CSV file with one row per image:
//
//	a.jpg,0.12,0.0,...,0.87
//
// Every row must carry an identifier followed by exactly Dim values. Any
// malformed row fails the whole load; there is no per-row skipping.
//
// Caches may be compressed. Open picks the codec from the file extension:
// ".gz" (gzip), ".zst" (zstandard) and ".lz4" are recognised.
package featurecache
