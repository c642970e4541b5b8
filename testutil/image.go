package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/cbir/feature"
)

// Gradient returns an image whose red channel rises left to right and whose
// green channel rises top to bottom. Blue is constant.
func Gradient(width, height int, blue uint8) *feature.Image {
	img := feature.NewImage(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, 0, scale(x, width))
			img.Set(x, y, 1, scale(y, height))
			img.Set(x, y, 2, blue)
		}
	}
	return img
}

func scale(i, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(i * 255 / (n - 1))
}

// Checker returns a two-colour checkerboard with square cells of size cell.
func Checker(width, height, cell int, a, b [3]uint8) *feature.Image {
	img := feature.NewImage(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, 0, c[0])
			img.Set(x, y, 1, c[1])
			img.Set(x, y, 2, c[2])
		}
	}
	return img
}

// HalfAndHalf returns an image whose top half is top and bottom half is bottom.
func HalfAndHalf(width, height int, top, bottom [3]uint8) *feature.Image {
	img := feature.NewImage(width, height, 3)
	for y := 0; y < height; y++ {
		c := top
		if y >= height/2 {
			c = bottom
		}
		for x := 0; x < width; x++ {
			img.Set(x, y, 0, c[0])
			img.Set(x, y, 1, c[1])
			img.Set(x, y, 2, c[2])
		}
	}
	return img
}

// ToNRGBA converts img to a standard library image.
func ToNRGBA(img *feature.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.At(x, y, 0),
				G: img.At(x, y, 1),
				B: img.At(x, y, 2),
				A: 0xff,
			})
		}
	}
	return out
}

// EncodePNG encodes img as PNG.
func EncodePNG(tb testing.TB, img *feature.Image) []byte {
	tb.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, ToNRGBA(img)); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// WritePNG writes img as dir/name and returns the full path.
func WritePNG(tb testing.TB, dir, name string, img *feature.Image) string {
	tb.Helper()
	return WriteFile(tb, dir, name, EncodePNG(tb, img))
}

// WriteFile writes data as dir/name and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
