package favorites_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/favorites"
	"go-storefront-api/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductReader struct {
	GetProductFn func(ctx context.Context, id int, bypassCache bool) (catalog.Product, error)
}

func (f *fakeProductReader) GetProduct(ctx context.Context, id int, bypassCache bool) (catalog.Product, error) {
	return f.GetProductFn(ctx, id, bypassCache)
}

func setupFavoritesRouter(t *testing.T, reader favorites.ProductReader) (*gin.Engine, favorites.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := favorites.NewService(context.Background(), kvstore.NewMemoryStore(), nil)
	handler := favorites.NewHandler(svc, reader)

	r := gin.New()
	favorites.RegisterRoutes(r.Group("/api/v1"), handler)
	return r, svc
}

func knownProduct(p catalog.Product) *fakeProductReader {
	return &fakeProductReader{
		GetProductFn: func(_ context.Context, id int, _ bool) (catalog.Product, error) {
			if id == p.ID {
				return p, nil
			}
			return catalog.Product{}, &catalog.FetchError{Status: http.StatusNotFound}
		},
	}
}

func TestFavoritesHandler_List(t *testing.T) {
	r, svc := setupFavoritesRouter(t, knownProduct(catalog.Product{}))
	svc.Add(product(1))
	svc.Add(product(2))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data favorites.FavoritesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.ItemCount)
	assert.Len(t, body.Data.Items, 2)
}

func TestFavoritesHandler_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupFavoritesRouter(t, knownProduct(catalog.Product{ID: 7, Title: "Gadget"}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"productId":7}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, svc.IsFavorite(7))
	})

	t.Run("unknown_product_is_not_found", func(t *testing.T) {
		r, svc := setupFavoritesRouter(t, knownProduct(catalog.Product{ID: 7}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"productId":999}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, svc.List())
	})
}

func TestFavoritesHandler_Remove(t *testing.T) {
	r, svc := setupFavoritesRouter(t, knownProduct(catalog.Product{}))
	svc.Add(product(1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.IsFavorite(1))
}

func TestFavoritesHandler_Clear(t *testing.T) {
	r, svc := setupFavoritesRouter(t, knownProduct(catalog.Product{}))
	svc.Add(product(1))
	svc.Add(product(2))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/favorites", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.List())
}
