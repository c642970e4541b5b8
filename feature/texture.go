package feature

import (
	"fmt"
	"math"
)

// Texture is a 1-D histogram of gradient orientations in degrees over
// [0,360). Gradients come from 3x3 Sobel operators on the luma channel.
// Every pixel counts once; magnitude is not used as a weight.
type Texture struct {
	Bins int
}

func (t Texture) Name() string {
	return fmt.Sprintf("texture(bins=%d)", t.Bins)
}

func (t Texture) Extract(img *Image, r Region) (Descriptor, error) {
	name := t.Name()
	if t.Bins <= 0 {
		return Descriptor{}, extractionErrorf(name, "bins must be positive")
	}
	if err := checkInput(name, img, r, 3); err != nil {
		return Descriptor{}, err
	}

	gray := luma(img, r)
	w, h := r.Width, r.Height
	at := func(x, y int) float64 {
		return float64(gray[reflect101(y, h)*w+reflect101(x, w)])
	}

	d := NewDescriptor(t.Bins)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := (at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x-1, y) + at(x-1, y+1))
			gy := (at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1))
			d.Data[orientationBin(gx, gy, t.Bins)]++
		}
	}
	NormalizeMinMax(d.Data)
	return d, nil
}

// luma converts r to 8-bit grayscale using Rec.601 weights.
func luma(img *Image, r Region) []uint8 {
	gray := make([]uint8, r.Area())
	i := 0
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			off := img.offset(x, y)
			v := 0.299*float64(img.Pix[off]) + 0.587*float64(img.Pix[off+1]) + 0.114*float64(img.Pix[off+2])
			gray[i] = uint8(math.Min(math.Round(v), 255))
			i++
		}
	}
	return gray
}

// reflect101 mirrors out-of-range indices without repeating the edge
// (gfedcb|abcdefgh|gfedcba).
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

func orientationBin(gx, gy float64, bins int) int {
	deg := math.Atan2(gy, gx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	i := int(deg * float64(bins) / 360)
	if i >= bins {
		return bins - 1
	}
	return i
}
