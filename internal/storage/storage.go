// Package storage defines the interface for image blob storage.
// The local-directory implementation is the default; the MinIO implementation
// works with any S3-compatible provider and is selected via configuration.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// Storage is the interface for saving and retrieving image blobs.
type Storage interface {
	// Save writes data to the store under the given key. Keys are unique by
	// construction, so implementations never overwrite.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open returns a reader over the object stored under key.
	// Returns ErrNotFound if the key does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object identified by key.
	Delete(ctx context.Context, key string) error
}
