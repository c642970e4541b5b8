package featurecache

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec of a cache file.
type Compression int

const (
	// CompressionNone reads the cache as plain CSV.
	CompressionNone Compression = iota
	// CompressionGzip reads a gzip stream.
	CompressionGzip
	// CompressionZstd reads a zstandard stream.
	CompressionZstd
	// CompressionLZ4 reads an lz4 frame stream.
	CompressionLZ4
)

// String returns the file extension of the codec.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// DetectCompression picks the codec from the file extension.
func DetectCompression(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewReader wraps r with the decompressor for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Open reads and parses the cache stored as name in store.
func Open(ctx context.Context, store blobstore.BlobStore, name string, dim int) (*Cache, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	rc, err := NewReader(blobstore.NewReader(ctx, blob), DetectCompression(name))
	if err != nil {
		return nil, fmt.Errorf("featurecache: %s: %w", store.Path(name), err)
	}
	defer func() { _ = rc.Close() }()

	c, err := Load(rc, dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", store.Path(name), err)
	}
	return c, nil
}
