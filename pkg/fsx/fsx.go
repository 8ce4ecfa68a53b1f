// Package fsx abstracts object storage behind small interfaces so services
// depend on capabilities, not on a concrete provider.
package fsx

import (
	"context"
	"io"
	"time"
)

// FileSystem provides object read/write/delete against a storage backend.
type FileSystem interface {
	// WriteFile stores data under key, overwriting any existing object.
	WriteFile(ctx context.Context, key string, data []byte) error

	// ReadFileStream opens the object for streaming reads. The caller owns
	// closing the returned reader.
	ReadFileStream(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteFile removes the object. Deleting a missing object is not an error.
	DeleteFile(ctx context.Context, key string) error

	// Join builds a storage key from path segments.
	Join(parts ...string) string
}

// Presigner issues time-limited retrieval URLs for stored objects.
type Presigner interface {
	// PresignGet returns a URL granting read access to key for ttl.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
