package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/blobstore/minio"
	blobs3 "github.com/hupe1980/cbir/blobstore/s3"
)

const (
	schemeS3    = "s3://"
	schemeMinio = "minio://"
)

// openStore resolves a directory argument to a BlobStore.
//
//	/local/dir                      LocalStore
//	s3://bucket/prefix              S3 with the default AWS credential chain
//	minio://endpoint/bucket/prefix  MinIO with MINIO_* or AWS_* credentials
func openStore(ctx context.Context, uri string) (blobstore.BlobStore, error) {
	switch {
	case strings.HasPrefix(uri, schemeS3):
		bucket, prefix := splitBucket(strings.TrimPrefix(uri, schemeS3))
		if bucket == "" {
			return nil, fmt.Errorf("missing bucket in %q", uri)
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return blobs3.NewStore(s3.NewFromConfig(cfg), bucket, prefix), nil

	case strings.HasPrefix(uri, schemeMinio):
		endpoint, rest := splitBucket(strings.TrimPrefix(uri, schemeMinio))
		bucket, prefix := splitBucket(rest)
		if endpoint == "" || bucket == "" {
			return nil, fmt.Errorf("expected minio://endpoint/bucket[/prefix], got %q", uri)
		}
		store, err := minio.Dial(endpoint, bucket, prefix)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return blobstore.NewLocalStore(uri), nil
	}
}

// openFile resolves a file argument to the store holding it and its name
// within that store.
func openFile(ctx context.Context, uri string) (blobstore.BlobStore, string, error) {
	var dir, name string
	if scheme, ok := remoteScheme(uri); ok {
		i := strings.LastIndex(uri, "/")
		if i < len(scheme) {
			return nil, "", fmt.Errorf("%q does not name a file", uri)
		}
		dir, name = uri[:i], uri[i+1:]
	} else {
		dir, name = filepath.Dir(uri), filepath.Base(uri)
	}
	if name == "" {
		return nil, "", fmt.Errorf("%q does not name a file", uri)
	}

	store, err := openStore(ctx, dir)
	if err != nil {
		return nil, "", err
	}
	return store, name, nil
}

func splitBucket(s string) (string, string) {
	first, rest, _ := strings.Cut(s, "/")
	return first, rest
}

func remoteScheme(uri string) (string, bool) {
	for _, scheme := range []string{schemeS3, schemeMinio} {
		if strings.HasPrefix(uri, scheme) {
			return scheme, true
		}
	}
	return "", false
}
