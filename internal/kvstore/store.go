package kvstore

import "context"

// Store is the durable string key/value store behind the cache and the
// cart/favorites snapshots. Get reports absence through the bool, not an
// error; all operations may fail and callers are expected to log and
// degrade rather than crash.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	ListKeys(ctx context.Context) ([]string, error)
	RemoveMany(ctx context.Context, keys []string) error
}
