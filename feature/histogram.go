package feature

import "fmt"

// Chromaticity is a 2-D histogram over two channels with Bins bins per
// axis across [0,256). The zero Channels value selects red and green.
type Chromaticity struct {
	Bins     int
	Channels [2]int
}

// DefaultChannels are the red and green channel indices.
var DefaultChannels = [2]int{0, 1}

func (c Chromaticity) channels() (int, int) {
	if c.Channels == ([2]int{}) {
		return DefaultChannels[0], DefaultChannels[1]
	}
	return c.Channels[0], c.Channels[1]
}

func (c Chromaticity) Name() string {
	ch0, ch1 := c.channels()
	return fmt.Sprintf("chromaticity(bins=%d,channels=%d,%d)", c.Bins, ch0, ch1)
}

func (c Chromaticity) Extract(img *Image, r Region) (Descriptor, error) {
	name := c.Name()
	if c.Bins <= 0 {
		return Descriptor{}, extractionErrorf(name, "bins must be positive")
	}
	ch0, ch1 := c.channels()
	if err := checkInput(name, img, r, max(ch0, ch1)+1); err != nil {
		return Descriptor{}, err
	}
	if ch0 < 0 || ch1 < 0 {
		return Descriptor{}, extractionErrorf(name, "negative channel index")
	}

	d := NewDescriptor(c.Bins, c.Bins)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			off := img.offset(x, y)
			i := binOf(img.Pix[off+ch0], c.Bins)
			j := binOf(img.Pix[off+ch1], c.Bins)
			d.Data[i*c.Bins+j]++
		}
	}
	NormalizeMinMax(d.Data)
	return d, nil
}

// ColorHistogram is a 3-D histogram over R, G and B with Bins bins per axis.
type ColorHistogram struct {
	Bins int
}

func (c ColorHistogram) Name() string {
	return fmt.Sprintf("color(bins=%d)", c.Bins)
}

func (c ColorHistogram) Extract(img *Image, r Region) (Descriptor, error) {
	name := c.Name()
	if c.Bins <= 0 {
		return Descriptor{}, extractionErrorf(name, "bins must be positive")
	}
	if err := checkInput(name, img, r, 3); err != nil {
		return Descriptor{}, err
	}

	b := c.Bins
	d := NewDescriptor(b, b, b)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			off := img.offset(x, y)
			i := binOf(img.Pix[off], b)
			j := binOf(img.Pix[off+1], b)
			k := binOf(img.Pix[off+2], b)
			d.Data[(i*b+j)*b+k]++
		}
	}
	NormalizeMinMax(d.Data)
	return d, nil
}

// binOf maps a channel value in [0,256) to floor(v/(256/bins)), clamped
// to [0, bins-1].
func binOf(v uint8, bins int) int {
	i := int(v) * bins / 256
	if i >= bins {
		return bins - 1
	}
	return i
}

// NormalizeMinMax rescales h in place so its minimum maps to 0 and its
// maximum to 1. A flat histogram becomes all zeros.
func NormalizeMinMax(h []float64) {
	if len(h) == 0 {
		return
	}
	lo, hi := h[0], h[0]
	for _, v := range h[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi-lo <= 0 {
		clear(h)
		return
	}
	span := hi - lo
	for i, v := range h {
		h[i] = (v - lo) / span
	}
}
