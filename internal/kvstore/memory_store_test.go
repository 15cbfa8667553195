package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetSetRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, "a", "1"))
	val, ok, err := store.Get(ctx, "a")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", val)

	assert.NoError(t, store.Remove(ctx, "a"))
	_, ok, _ = store.Get(ctx, "a")
	assert.False(t, ok)

	// removing an absent key is fine
	assert.NoError(t, store.Remove(ctx, "a"))
}

func TestMemoryStore_ListAndRemoveMany(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Set(ctx, "a", "1")
	_ = store.Set(ctx, "b", "2")
	_ = store.Set(ctx, "c", "3")

	keys, err := store.ListKeys(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)

	assert.NoError(t, store.RemoveMany(ctx, []string{"a", "c"}))
	keys, _ = store.ListKeys(ctx)
	assert.ElementsMatch(t, []string{"b"}, keys)
}
