// Package feature turns decoded images into fixed-shape descriptors.
//
// An Extractor maps an Image, restricted to a Region, to a Descriptor. A
// Scheme composes several (Extractor, region selector) pairs into a
// Signature, which is what the ranker compares:
//
//	scheme := feature.Scheme{
//	    {Extractor: feature.Chromaticity{Bins: 8}, Region: feature.TopHalf},
//	    {Extractor: feature.Chromaticity{Bins: 8}, Region: feature.BottomHalf},
//	}
//	sig, err := scheme.Extract(img)
//
// # Extractors
//
//   - Raw: flattened channel values of a region (the centre patch variant)
//   - Chromaticity: 2-D histogram over two channels
//   - ColorHistogram: 3-D histogram over all three channels
//   - Texture: 1-D histogram of Sobel gradient orientations
//
// All histograms are min-max normalised so the largest bin is 1.0.
// Extractors are pure and safe for concurrent use.
package feature
