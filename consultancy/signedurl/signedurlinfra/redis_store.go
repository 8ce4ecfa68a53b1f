package signedurlinfra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careerlane/careerlane/consultancy/signedurl"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements signedurl.Store on Redis. Entries carry their own
// expiry instant; the read side re-validates it instead of relying on Redis
// key expiry, so clock skew between writers never serves a dead URL.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store namespaced under prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) redisKey(key kernel.StorageKey) string {
	return s.prefix + ":" + key.String()
}

// Get retrieves the cached entry for key, or nil when none exists.
func (s *RedisStore) Get(ctx context.Context, key kernel.StorageKey) (*signedurl.Entry, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached url for %s: %w", key, err)
	}

	var entry signedurl.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode cached url for %s: %w", key, err)
	}
	return &entry, nil
}

// Put upserts the entry under its key. The Redis key gets no TTL of its own:
// stale entries are simply superseded on the next regeneration.
func (s *RedisStore) Put(ctx context.Context, entry *signedurl.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cached url for %s: %w", entry.Key, err)
	}

	if err := s.client.Set(ctx, s.redisKey(entry.Key), data, 0).Err(); err != nil {
		return fmt.Errorf("store cached url for %s: %w", entry.Key, err)
	}
	return nil
}
