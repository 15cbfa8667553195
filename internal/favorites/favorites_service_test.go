package favorites_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/favorites"
	"go-storefront-api/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int) catalog.Product {
	return catalog.Product{ID: id, Title: "p"}
}

func TestFavoritesService_AddRemoveIsFavorite(t *testing.T) {
	svc := favorites.NewService(context.Background(), kvstore.NewMemoryStore(), nil)

	svc.Add(product(1))
	svc.Add(product(1)) // duplicate add keeps a single entry
	assert.True(t, svc.IsFavorite(1))
	assert.Len(t, svc.List(), 1)

	svc.Remove(1)
	assert.False(t, svc.IsFavorite(1))
}

func TestFavoritesService_PersistsSnapshot(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	svc := favorites.NewService(ctx, store, nil)
	svc.Add(product(1))
	svc.Add(product(2))
	svc.Flush()

	raw, ok, err := store.Get(ctx, "user_favorites")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []catalog.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, 2)
}

func TestFavoritesService_RestoresSnapshot(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	raw, err := json.Marshal([]catalog.Product{product(5)})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user_favorites", string(raw)))

	svc := favorites.NewService(ctx, store, nil)
	assert.True(t, svc.IsFavorite(5))
}

func TestFavoritesService_MalformedSnapshotStartsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user_favorites", "not json"))

	svc := favorites.NewService(ctx, store, nil)
	assert.Empty(t, svc.List())
}

func TestFavoritesService_Clear(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	svc := favorites.NewService(ctx, store, nil)
	svc.Add(product(1))
	svc.Add(product(2))
	svc.Clear()
	svc.Flush()

	assert.Empty(t, svc.List())

	raw, ok, _ := store.Get(ctx, "user_favorites")
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}
