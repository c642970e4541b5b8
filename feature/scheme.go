package feature

import "fmt"

// Part pairs an extractor with the region it runs on.
type Part struct {
	Extractor Extractor
	Region    Selector
}

// Scheme is an ordered list of parts. Extract yields one descriptor per part.
// Hold a scheme fixed for the target and every candidate of a ranking run.
type Scheme []Part

// Extract computes the signature of img.
func (s Scheme) Extract(img *Image) (Signature, error) {
	if len(s) == 0 {
		return nil, extractionErrorf("scheme", "no parts configured")
	}
	if img == nil {
		return nil, extractionErrorf("scheme", "nil image")
	}
	sig := make(Signature, len(s))
	for i, p := range s {
		sel := p.Region
		if sel == nil {
			sel = Full
		}
		r, err := sel(img)
		if err != nil {
			return nil, fmt.Errorf("part %d (%s): %w", i, p.Extractor.Name(), err)
		}
		d, err := p.Extractor.Extract(img, r)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		sig[i] = d
	}
	return sig, nil
}

// PatchScheme is the centre-patch variant: raw values of the k x k centre square.
func PatchScheme(k int) Scheme {
	return Scheme{{Extractor: Raw{}, Region: CenterSquare(k)}}
}

// ChromaticityScheme is a whole-image red/green histogram.
func ChromaticityScheme(bins int) Scheme {
	return Scheme{{Extractor: Chromaticity{Bins: bins}, Region: Full}}
}

// SplitScheme applies e independently to the top and bottom halves.
func SplitScheme(e Extractor) Scheme {
	return Scheme{
		{Extractor: e, Region: TopHalf},
		{Extractor: e, Region: BottomHalf},
	}
}

// ColorTextureScheme pairs a 3-D colour histogram with an orientation
// histogram, both over the whole image.
func ColorTextureScheme(bins int) Scheme {
	return Scheme{
		{Extractor: ColorHistogram{Bins: bins}, Region: Full},
		{Extractor: Texture{Bins: bins}, Region: Full},
	}
}
