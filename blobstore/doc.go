// Package blobstore provides read access to image directories and feature
// caches independent of where they live.
//
// A BlobStore lists the names under a root and opens them as Blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, files are memory mapped
//   - MemoryStore: in-memory store for tests
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3
//
// Use ReadAll to fetch a whole blob. It prefers zero-copy access for mapped
// blobs and a backend downloader when one is available.
package blobstore
