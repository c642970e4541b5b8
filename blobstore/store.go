package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/cbir/internal/conv"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is a flat, read-only namespace of blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// List returns the names of the blobs directly under the root whose name
	// starts with prefix, sorted by name.
	List(ctx context.Context, prefix string) ([]string, error)

	// Path returns the display path of name, e.g. "dir/a.jpg" or
	// "s3://bucket/prefix/a.jpg".
	Path(name string) string
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at off. It follows io.ReaderAt.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)

	// Size returns the size of the blob in bytes.
	Size() int64

	io.Closer
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Downloader is an optional interface for Blobs that can fetch their whole
// content more efficiently than sequential ReadAt calls.
type Downloader interface {
	Download(ctx context.Context) ([]byte, error)
}

// ReadAll returns the full content of blob. The returned slice is always a
// copy owned by the caller.
func ReadAll(ctx context.Context, blob Blob) ([]byte, error) {
	if m, ok := blob.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	if d, ok := blob.(Downloader); ok {
		return d.Download(ctx)
	}

	size := blob.Size()
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("blobstore: invalid size: %w", err)
	}

	buf := make([]byte, n)
	n, err = blob.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && int64(n) == size) {
		return nil, err
	}
	return buf[:n], nil
}

// Reader adapts a Blob to io.Reader and io.ReaderAt bound to ctx.
type Reader struct {
	ctx  context.Context
	blob Blob
	off  int64
}

// NewReader returns a sequential reader over blob.
func NewReader(ctx context.Context, blob Blob) *Reader {
	return &Reader{ctx: ctx, blob: blob}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if errors.Is(err, io.EOF) && n > 0 {
		err = nil
	}
	return n, err
}

// ReadAt implements io.ReaderAt.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	return r.blob.ReadAt(r.ctx, p, off)
}

// Fetch returns the whole content of name in store.
func Fetch(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	return ReadAll(ctx, blob)
}
