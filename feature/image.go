package feature

import (
	"image"
	"image/color"
)

// Image is a decoded pixel grid. Pixels are stored row-major with channels
// interleaved in R, G, B order. Treat an Image as immutable once built.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewImage allocates a zeroed image.
func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// FromImage converts any image.Image into a 3-channel RGB Image.
// Alpha is discarded; gray and paletted images are expanded to RGB.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy(), 3)

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < img.Height; y++ {
			row := s.Pix[y*s.Stride:]
			for x := 0; x < img.Width; x++ {
				copy(img.Pix[img.offset(x, y):], row[x*4:x*4+3])
			}
		}
	case *image.Gray:
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				v := s.Pix[y*s.Stride+x]
				off := img.offset(x, y)
				img.Pix[off], img.Pix[off+1], img.Pix[off+2] = v, v, v
			}
		}
	default:
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				off := img.offset(x, y)
				img.Pix[off], img.Pix[off+1], img.Pix[off+2] = c.R, c.G, c.B
			}
		}
	}

	return img
}

// Solid returns a width x height RGB image filled with one colour.
func Solid(width, height int, r, g, b uint8) *Image {
	img := NewImage(width, height, 3)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
	return img
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * img.Channels
}

// At returns channel c of the pixel at column x, row y.
func (img *Image) At(x, y, c int) uint8 {
	return img.Pix[img.offset(x, y)+c]
}

// Set writes channel c of the pixel at column x, row y.
func (img *Image) Set(x, y, c int, v uint8) {
	img.Pix[img.offset(x, y)+c] = v
}

// Bounds returns the region covering the whole image.
func (img *Image) Bounds() Region {
	return Region{Width: img.Width, Height: img.Height}
}
