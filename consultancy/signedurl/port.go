package signedurl

import (
	"context"

	"github.com/careerlane/careerlane/pkg/kernel"
)

type Store interface {
	// Get retrieves the cached entry for key, or nil when none exists.
	// Expiry is the caller's concern: stale entries are returned as-is.
	Get(ctx context.Context, key kernel.StorageKey) (*Entry, error)

	// Put upserts the entry under its key, superseding any previous one.
	Put(ctx context.Context, entry *Entry) error
}
