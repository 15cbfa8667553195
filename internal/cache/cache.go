package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-storefront-api/internal/kvstore"

	"go.uber.org/zap"
)

const keyPrefix = "app_cache_"

// DefaultTTL applies when Set is called with a non-positive ttl.
const DefaultTTL = 5 * time.Minute

// entry is the stored envelope: payload plus creation time and TTL,
// both in milliseconds since epoch / milliseconds.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	ExpiresIn int64           `json:"expiresIn"`
}

// Cache is a TTL-tagged read-through cache over a durable store. It is
// best-effort everywhere: storage failures and malformed entries are
// logged and treated as misses, never surfaced to callers.
type Cache struct {
	store  kvstore.Store
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Cache)

// WithClock overrides the time source. Tests use this to step past TTLs.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(store kvstore.Store, logger *zap.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key with the given TTL, overwriting any prior
// entry. It never reports failure; the cache is advisory.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache set: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	raw, err := json.Marshal(entry{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
		ExpiresIn: ttl.Milliseconds(),
	})
	if err != nil {
		c.logger.Warn("cache set: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.Set(ctx, keyPrefix+key, string(raw)); err != nil {
		c.logger.Warn("cache set: store write failed", zap.String("key", key), zap.Error(err))
	}
}

// Get unmarshals the cached value for key into dest and reports whether a
// valid entry was found. An expired entry is deleted and treated as a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok, err := c.store.Get(ctx, keyPrefix+key)
	if err != nil {
		c.logger.Warn("cache get: store read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		c.logger.Warn("cache get: malformed entry", zap.String("key", key), zap.Error(err))
		return false
	}

	if c.expired(e) {
		// Lazy eviction; a failed delete just means another read pays again.
		c.Remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(e.Data, dest); err != nil {
		c.logger.Warn("cache get: payload unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes the entry for key. Removing an absent key is not an error.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.store.Remove(ctx, keyPrefix+key); err != nil {
		c.logger.Warn("cache remove failed", zap.String("key", key), zap.Error(err))
	}
}

// Clear removes every entry under the cache namespace, leaving unrelated
// store keys untouched.
func (c *Cache) Clear(ctx context.Context) {
	c.RemoveByPrefix(ctx, "")
}

// RemoveByPrefix removes all entries whose logical key starts with prefix.
func (c *Cache) RemoveByPrefix(ctx context.Context, prefix string) {
	keys, err := c.store.ListKeys(ctx)
	if err != nil {
		c.logger.Warn("cache clear: list keys failed", zap.Error(err))
		return
	}

	var matched []string
	for _, key := range keys {
		if strings.HasPrefix(key, keyPrefix+prefix) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return
	}

	if err := c.store.RemoveMany(ctx, matched); err != nil {
		c.logger.Warn("cache clear: remove failed", zap.Error(err))
	}
}

// IsExpired reports whether key is absent or past its TTL. Unlike Get it
// never mutates storage.
func (c *Cache) IsExpired(ctx context.Context, key string) bool {
	raw, ok, err := c.store.Get(ctx, keyPrefix+key)
	if err != nil || !ok {
		return true
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return true
	}
	return c.expired(e)
}

func (c *Cache) expired(e entry) bool {
	return c.now().UnixMilli()-e.Timestamp > e.ExpiresIn
}
