// Package distance scores the dissimilarity of two descriptors.
//
// # Supported Metrics
//
//   - MetricSumSquared: sum of squared differences (raw vectors)
//   - MetricChiSquared: chi-squared histogram distance
//   - MetricCorrelation: 1 - Pearson correlation
//   - MetricCosine: 1 - cosine similarity
//
// Slice-level functions assume equal lengths. Funcs returned by Provider
// check descriptor shapes and fail with ErrShapeMismatch.
//
// # Usage
//
//	chi, _ := distance.Provider(distance.MetricChiSquared)
//	split, _ := distance.Combine([]float64{0.5, 0.5}, chi, chi)
//	d, err := split(targetSig, candidateSig)
package distance
