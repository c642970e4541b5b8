package camera

import (
	"context"
	"errors"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/imageio"
)

// ErrNoFrame is returned when a source has no frame to deliver.
var ErrNoFrame = errors.New("camera: no frame")

// ErrDeviceUnsupported is returned by OpenDevice in builds without gocv.
var ErrDeviceUnsupported = errors.New("camera: video devices need the gocv build tag")

// FrameSource delivers frames for live matching.
type FrameSource interface {
	Capture(ctx context.Context) (*feature.Image, error)
	Close() error
}

// FileSource re-reads one image on every capture, e.g. a snapshot another
// tool keeps overwriting.
type FileSource struct {
	store blobstore.BlobStore
	name  string
}

// NewFileSource returns a source reading name from store.
func NewFileSource(store blobstore.BlobStore, name string) *FileSource {
	return &FileSource{store: store, name: name}
}

// Capture loads the current content of the file.
func (s *FileSource) Capture(ctx context.Context) (*feature.Image, error) {
	img, err := imageio.Load(ctx, s.store, s.name)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, errors.Join(ErrNoFrame, err)
	}
	return img, err
}

// Close is a no-op.
func (s *FileSource) Close() error { return nil }
