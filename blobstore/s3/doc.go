// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "images/")
//
// Objects directly under the prefix are listed; "sub-folders" are not
// descended into. Blobs are fetched with ranged GetObject calls, and whole
// object downloads use the transfer manager.
package s3
