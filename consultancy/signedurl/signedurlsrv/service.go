package signedurlsrv

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/signedurl"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/fsx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/careerlane/careerlane/pkg/logx"
)

// Resolver converts storage keys into time-limited retrieval URLs,
// amortizing presigner calls through a persistent cache.
//
// Resolve is NOT a pure read: a cache miss or an expired entry upserts the
// regenerated entry as a side effect. Callers must tolerate this.
type Resolver struct {
	store      signedurl.Store
	presigner  fsx.Presigner
	defaultTTL time.Duration
	now        func() time.Time
}

// NewResolver creates a resolver with the given default TTL.
func NewResolver(store signedurl.Store, presigner fsx.Presigner, defaultTTL time.Duration) *Resolver {
	return &Resolver{
		store:      store,
		presigner:  presigner,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Resolve returns a usable retrieval URL for key using the default TTL.
func (r *Resolver) Resolve(ctx context.Context, key kernel.StorageKey) (string, error) {
	return r.ResolveWithTTL(ctx, key, r.defaultTTL)
}

// ResolveWithTTL returns the cached URL while it is strictly unexpired;
// otherwise it asks the presigner for a fresh URL valid for ttl, upserts the
// entry, and returns the new URL. A cache hit never extends the TTL. The
// upsert happens only after successful generation, so a presigner failure
// leaves the cache untouched.
func (r *Resolver) ResolveWithTTL(ctx context.Context, key kernel.StorageKey, ttl time.Duration) (string, error) {
	if key.IsEmpty() {
		return "", signedurl.ErrEmptyKey()
	}

	entry, err := r.store.Get(ctx, key)
	if err != nil {
		// A broken cache store must not take the read path down; fall
		// through to regeneration.
		logx.Warnf("signed-url cache read failed for %s: %v", key, err)
	}

	now := r.now()
	if entry != nil && entry.Usable(now) {
		return entry.URL, nil
	}

	url, err := r.presigner.PresignGet(ctx, key.String(), ttl)
	if err != nil {
		return "", signedurl.ErrGenerationFailed().
			WithDetail("key", key.String()).
			WithCause(err)
	}

	fresh := &signedurl.Entry{
		Key:       key,
		URL:       url,
		ExpiresAt: now.Add(ttl),
	}
	if err := r.store.Put(ctx, fresh); err != nil {
		return "", errx.Wrap(err, "failed to cache signed url", errx.TypeInternal)
	}

	return url, nil
}
