package imageio

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestLoad_PNG(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePNG(t, dir, "red.png", feature.Solid(4, 3, 255, 0, 0))

	img, err := Load(context.Background(), blobstore.NewLocalStore(dir), "red.png")
	require.NoError(t, err)

	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, uint8(255), img.At(3, 2, 0))
	assert.Equal(t, uint8(0), img.At(3, 2, 1))
}

func TestLoad_BMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	store := blobstore.NewMemoryStore()
	store.Put("x.bmp", buf.Bytes())

	img, err := Load(context.Background(), store, "x.bmp")
	require.NoError(t, err)
	assert.Equal(t, []uint8{10, 20, 30}, img.Pix[:3])
}

func TestLoad_GrayJPEG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 128
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, &jpeg.Options{Quality: 100}))

	store := blobstore.NewMemoryStore()
	store.Put("g.jpg", buf.Bytes())

	img, err := Load(context.Background(), store, "g.jpg")
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels)
	assert.InDelta(t, 128, int(img.At(4, 4, 0)), 2)
	assert.Equal(t, img.At(4, 4, 0), img.At(4, 4, 2))
}

func TestLoad_Errors(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("notes.txt", []byte("not an image"))

	t.Run("Undecodable", func(t *testing.T) {
		_, err := Load(context.Background(), store, "notes.txt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecode))

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "mem/notes.txt", de.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(context.Background(), store, "missing.png")
		assert.True(t, errors.Is(err, blobstore.ErrNotFound))
		assert.False(t, errors.Is(err, ErrDecode))
	})
}

func TestDecode_Format(t *testing.T) {
	_, format, err := Decode(bytes.NewReader(testutil.EncodePNG(t, feature.Solid(1, 1, 0, 0, 0))))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}
