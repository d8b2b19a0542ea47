// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so dictionary shards can be served from AWS S3 or a self-hosted
// MinIO instance instead of the local filesystem.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the shard bucket at startup.
//   - GetObject: Retrieves a shard as a stream.
//
// IsNotFound classifies "NoSuchKey"-style responses, which the dictionary store treats as a
// skipped shard rather than an error.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
