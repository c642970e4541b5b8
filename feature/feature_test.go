package feature

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *Image {
	img := NewImage(w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, 0, uint8(x*255/max(w-1, 1)))
			img.Set(x, y, 1, uint8(y*255/max(h-1, 1)))
			img.Set(x, y, 2, 128)
		}
	}
	return img
}

func TestRegionSelectors(t *testing.T) {
	img := NewImage(10, 11, 3)

	top, err := TopHalf(img)
	require.NoError(t, err)
	assert.Equal(t, Region{X: 0, Y: 0, Width: 10, Height: 5}, top)

	bottom, err := BottomHalf(img)
	require.NoError(t, err)
	assert.Equal(t, Region{X: 0, Y: 5, Width: 10, Height: 5}, bottom)

	centre, err := CenterSquare(7)(img)
	require.NoError(t, err)
	assert.Equal(t, Region{X: 1, Y: 2, Width: 7, Height: 7}, centre)

	_, err = CenterSquare(12)(img)
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = TopHalf(NewImage(4, 1, 3))
	assert.ErrorIs(t, err, ErrExtraction, "one-row image has an empty top half")
}

func TestNewRegion_OutOfBounds(t *testing.T) {
	img := NewImage(4, 4, 3)
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"ZeroWidth", 0, 0, 0, 2},
		{"ZeroHeight", 0, 0, 2, 0},
		{"NegativeOffset", -1, 0, 2, 2},
		{"PastRight", 3, 0, 2, 2},
		{"PastBottom", 0, 3, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegion(img, tt.x, tt.y, tt.w, tt.h)
			assert.ErrorIs(t, err, ErrExtraction)
		})
	}
}

func TestRaw_CenterPatch(t *testing.T) {
	img := gradient(9, 9)
	sig, err := PatchScheme(DefaultPatchSize).Extract(img)
	require.NoError(t, err)
	require.Len(t, sig, 1)

	d := sig[0]
	assert.Equal(t, []int{7, 7, 3}, d.Shape)
	assert.Len(t, d.Data, 7*7*3)
	// First value is the red channel of pixel (1,1).
	assert.Equal(t, float64(img.At(1, 1, 0)), d.Data[0])
	assert.Equal(t, float64(img.At(7, 7, 1)), d.Data[len(d.Data)-2])
}

func TestRaw_InsufficientInput(t *testing.T) {
	_, err := Raw{}.Extract(&Image{Width: 2, Height: 2, Channels: 3}, Region{Width: 1, Height: 1})
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = PatchScheme(7).Extract(Solid(5, 5, 1, 2, 3))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestChromaticity_SolidColours(t *testing.T) {
	c := Chromaticity{Bins: 16}

	red := Solid(10, 10, 255, 0, 0)
	d, err := c.Extract(red, red.Bounds())
	require.NoError(t, err)
	assert.Equal(t, []int{16, 16}, d.Shape)
	assert.Equal(t, 1.0, d.Data[15*16+0])
	assert.Equal(t, 1.0, sum(d.Data), "one-hot after min-max normalisation")

	blue := Solid(10, 10, 0, 0, 255)
	d, err = c.Extract(blue, blue.Bounds())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Data[0])

	green := Solid(10, 10, 0, 255, 0)
	d, err = c.Extract(green, green.Bounds())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Data[15], "red axis first, green axis second")

	d, err = Chromaticity{Bins: 16, Channels: [2]int{2, 1}}.Extract(blue, blue.Bounds())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Data[15*16+0])
}

func TestChromaticity_ChannelCheck(t *testing.T) {
	img := NewImage(4, 4, 1)
	_, err := Chromaticity{Bins: 4}.Extract(img, img.Bounds())
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = Chromaticity{Bins: 0}.Extract(Solid(2, 2, 0, 0, 0), Region{Width: 2, Height: 2})
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestBinOf(t *testing.T) {
	assert.Equal(t, 0, binOf(0, 16))
	assert.Equal(t, 0, binOf(15, 16))
	assert.Equal(t, 1, binOf(16, 16))
	assert.Equal(t, 15, binOf(255, 16))
	assert.Equal(t, 2, binOf(255, 3))
	assert.Equal(t, 0, binOf(85, 3))
	assert.Equal(t, 1, binOf(86, 3))
}

func TestNormalizeMinMax(t *testing.T) {
	h := []float64{0, 5, 10, 2.5}
	NormalizeMinMax(h)
	assert.Equal(t, []float64{0, 0.5, 1, 0.25}, h)

	flat := []float64{3, 3, 3}
	NormalizeMinMax(flat)
	assert.Equal(t, []float64{0, 0, 0}, flat)

	NormalizeMinMax(nil)
}

func TestHistograms_NormalisedRange(t *testing.T) {
	img := gradient(32, 24)
	extractors := []Extractor{
		Chromaticity{Bins: 8},
		ColorHistogram{Bins: 8},
		Texture{Bins: 8},
	}
	for _, e := range extractors {
		t.Run(e.Name(), func(t *testing.T) {
			d, err := e.Extract(img, img.Bounds())
			require.NoError(t, err)
			hi := 0.0
			for _, v := range d.Data {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
				hi = max(hi, v)
			}
			assert.Equal(t, 1.0, hi)
		})
	}
}

func TestColorHistogram_Shape(t *testing.T) {
	img := Solid(4, 4, 255, 255, 0)
	d, err := ColorHistogram{Bins: 8}.Extract(img, img.Bounds())
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8, 8}, d.Shape)
	assert.Equal(t, 1.0, d.Data[(7*8+7)*8+0])
}

func TestTexture_Orientation(t *testing.T) {
	// Brightness increases left to right: gradient points along +x (0 degrees).
	img := NewImage(8, 8, 3)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			for c := 0; c < 3; c++ {
				img.Set(x, y, c, uint8(x*30))
			}
		}
	}
	d, err := Texture{Bins: 4}.Extract(img, img.Bounds())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Data[0])
	assert.Equal(t, 0.0, d.Data[1])
	assert.Equal(t, 0.0, d.Data[2])
	assert.Equal(t, 0.0, d.Data[3])

	uniform := Solid(5, 5, 9, 9, 9)
	d, err = Texture{Bins: 4}.Extract(uniform, uniform.Bounds())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Data[0], "zero gradient maps to 0 degrees")
}

func TestOrientationBin(t *testing.T) {
	assert.Equal(t, 0, orientationBin(1, 0, 8))
	assert.Equal(t, 2, orientationBin(0, 1, 8))
	assert.Equal(t, 4, orientationBin(-1, 0, 8))
	assert.Equal(t, 6, orientationBin(0, -1, 8))
	assert.Equal(t, 7, orientationBin(1, -1e-12, 8))
}

func TestReflect101(t *testing.T) {
	assert.Equal(t, 1, reflect101(-1, 5))
	assert.Equal(t, 3, reflect101(5, 5))
	assert.Equal(t, 0, reflect101(-1, 1))
	assert.Equal(t, 2, reflect101(2, 5))
}

func TestScheme_Split(t *testing.T) {
	img := NewImage(6, 6, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, 0, 255)
		}
	}
	sig, err := SplitScheme(Chromaticity{Bins: 8}).Extract(img)
	require.NoError(t, err)
	require.Len(t, sig, 2)
	assert.Equal(t, 1.0, sig[0].Data[7*8])
	assert.Equal(t, 1.0, sig[1].Data[0])
	assert.True(t, sig.SameShape(sig))
}

func TestScheme_Empty(t *testing.T) {
	_, err := Scheme{}.Extract(Solid(2, 2, 0, 0, 0))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	img := FromImage(src)
	assert.Equal(t, []uint8{10, 20, 30, 40, 50, 60}, img.Pix)

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 77
	assert.Equal(t, []uint8{77, 77, 77}, FromImage(gray).Pix)

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, []uint8{1, 2, 3}, FromImage(rgba).Pix)
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
