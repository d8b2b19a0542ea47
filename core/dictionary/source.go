package dictionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"fioparser/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrShardNotFound is returned by a Source when the named shard does not exist.
// The store treats it as a skipped shard, not a failure.
var ErrShardNotFound = errors.New("dictionary shard not found")

// Source opens shard resources by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource reads shards from a directory on disk.
type FileSource struct {
	Dir string
}

// Open opens the shard file.
func (f FileSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	p := filepath.Join(f.Dir, name)
	file, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrShardNotFound, p)
		}
		return nil, err
	}
	return file, nil
}

// ObjectSource reads shards from an S3/MinIO bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectSource creates a source reading objects under prefix in bucket.
func NewObjectSource(client storage.Client, bucket, prefix string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, prefix: prefix}
}

// Open downloads the shard object.
// Minio reports a missing key lazily, on first read, so the object is read fully here.
func (o *ObjectSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(o.prefix, name)

	obj, err := o.client.GetObject(ctx, o.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, o.wrap(key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, o.wrap(key, err)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (o *ObjectSource) wrap(key string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s/%s", ErrShardNotFound, o.bucket, key)
	}
	return fmt.Errorf("failed to read object %s/%s: %w", o.bucket, key, err)
}
