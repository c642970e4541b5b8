package imageio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/feature"
)

// ErrDecode is the sentinel for undecodable image data.
var ErrDecode = errors.New("imageio: cannot decode image")

// DecodeError reports which image could not be decoded.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("imageio: decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Decode reads one image from r.
func Decode(r io.Reader) (*feature.Image, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}

	img := feature.FromImage(src)
	if img.Width == 0 || img.Height == 0 {
		return nil, format, errors.New("empty image")
	}

	return img, format, nil
}

// Load fetches name from store and decodes it. A missing blob yields an
// error satisfying errors.Is(err, blobstore.ErrNotFound); undecodable
// content yields a *DecodeError.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*feature.Image, error) {
	data, err := blobstore.Fetch(ctx, store, name)
	if err != nil {
		return nil, err
	}

	img, _, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Name: store.Path(name), Err: err}
	}

	return img, nil
}
