package feature

import "fmt"

// Region is a rectangular window inside an image.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRegion validates the window against img and returns it.
func NewRegion(img *Image, x, y, width, height int) (Region, error) {
	r := Region{X: x, Y: y, Width: width, Height: height}
	if err := r.validate(img); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

func (r Region) validate(img *Image) error {
	if r.Empty() {
		return extractionErrorf("region", "degenerate region %s", r)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.Width > img.Width || r.Y+r.Height > img.Height {
		return extractionErrorf("region", "region %s exceeds image %dx%d", r, img.Width, img.Height)
	}
	return nil
}

// Selector picks a region of an image.
type Selector func(img *Image) (Region, error)

// Full selects the whole image.
func Full(img *Image) (Region, error) {
	return NewRegion(img, 0, 0, img.Width, img.Height)
}

// TopHalf selects rows [0, h/2).
func TopHalf(img *Image) (Region, error) {
	return NewRegion(img, 0, 0, img.Width, img.Height/2)
}

// BottomHalf selects rows [h/2, h/2+h/2). For odd heights the last row is
// not covered, so both halves always have the same shape.
func BottomHalf(img *Image) (Region, error) {
	return NewRegion(img, 0, img.Height/2, img.Width, img.Height/2)
}

// CenterSquare selects the k x k square centred in the image.
func CenterSquare(k int) Selector {
	return func(img *Image) (Region, error) {
		return NewRegion(img, (img.Width-k)/2, (img.Height-k)/2, k, k)
	}
}
