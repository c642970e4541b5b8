package feature

// Extractor computes a descriptor for a region of an image.
type Extractor interface {
	// Name identifies the extractor configuration in errors and logs.
	Name() string

	// Extract computes the descriptor of r. r must lie inside img.
	Extract(img *Image, r Region) (Descriptor, error)
}

// Compile-time checks to ensure extractors satisfy Extractor.
var (
	_ Extractor = Raw{}
	_ Extractor = Chromaticity{}
	_ Extractor = ColorHistogram{}
	_ Extractor = Texture{}
)

// DefaultPatchSize is the side of the centre patch used by the raw-patch variant.
const DefaultPatchSize = 7

// Raw flattens the channel values of a region without normalisation.
// Shape is [height, width, channels].
type Raw struct{}

func (Raw) Name() string { return "raw" }

func (Raw) Extract(img *Image, r Region) (Descriptor, error) {
	if err := checkInput("raw", img, r, 1); err != nil {
		return Descriptor{}, err
	}

	d := NewDescriptor(r.Height, r.Width, img.Channels)
	i := 0
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			off := img.offset(x, y)
			for c := 0; c < img.Channels; c++ {
				d.Data[i] = float64(img.Pix[off+c])
				i++
			}
		}
	}
	return d, nil
}

func checkInput(name string, img *Image, r Region, channels int) error {
	if img == nil || len(img.Pix) == 0 {
		return extractionErrorf(name, "empty image")
	}
	if img.Channels < channels {
		return extractionErrorf(name, "image has %d channels, need %d", img.Channels, channels)
	}
	if len(img.Pix) != img.Width*img.Height*img.Channels {
		return extractionErrorf(name, "pixel buffer length %d does not match %dx%dx%d", len(img.Pix), img.Width, img.Height, img.Channels)
	}
	if err := r.validate(img); err != nil {
		return extractionErrorf(name, "%v", err)
	}
	return nil
}
