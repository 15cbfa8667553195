package persist_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go-storefront-api/internal/kvstore"
	"go-storefront-api/internal/pkg/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritesNewestSnapshot(t *testing.T) {
	store := kvstore.NewMemoryStore()
	w := persist.NewWriter(store, "user_cart", nil)

	w.Enqueue(`{"v":1}`)
	w.Enqueue(`{"v":2}`)
	w.Enqueue(`{"v":3}`)
	w.Flush()

	val, ok, err := store.Get(context.Background(), "user_cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"v":3}`, val)
}

// blockingStore holds the first write open so snapshots queued meanwhile
// must coalesce.
type blockingStore struct {
	*kvstore.MemoryStore
	entered chan struct{}
	release chan struct{}
	writes  atomic.Int32
}

func (s *blockingStore) Set(ctx context.Context, key, value string) error {
	s.writes.Add(1)
	s.entered <- struct{}{}
	<-s.release
	return s.MemoryStore.Set(ctx, key, value)
}

func TestWriter_CoalescesSupersededSnapshots(t *testing.T) {
	store := &blockingStore{
		MemoryStore: kvstore.NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	w := persist.NewWriter(store, "user_cart", nil)

	w.Enqueue("1")
	<-store.entered // first write in flight

	// queued while the first write is stuck; only the newest may survive
	w.Enqueue("2")
	w.Enqueue("3")
	w.Enqueue("4")

	store.release <- struct{}{} // finish write of "1"
	<-store.entered             // second write in flight
	store.release <- struct{}{}
	w.Flush()

	assert.Equal(t, int32(2), store.writes.Load())

	val, _, _ := store.MemoryStore.Get(context.Background(), "user_cart")
	assert.Equal(t, "4", val)
}

type failingStore struct {
	*kvstore.MemoryStore
}

func (s *failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestWriter_SwallowsWriteFailures(t *testing.T) {
	store := &failingStore{MemoryStore: kvstore.NewMemoryStore()}
	w := persist.NewWriter(store, "user_cart", nil)

	w.Enqueue("snapshot")
	w.Flush() // must return despite the failure

	_, ok, _ := store.MemoryStore.Get(context.Background(), "user_cart")
	assert.False(t, ok)
}
