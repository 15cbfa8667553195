package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE CATALOG ====================

type fakeProductReader struct {
	GetProductFn func(ctx context.Context, id int, bypassCache bool) (catalog.Product, error)
}

func (f *fakeProductReader) GetProduct(ctx context.Context, id int, bypassCache bool) (catalog.Product, error) {
	return f.GetProductFn(ctx, id, bypassCache)
}

// ==================== HELPER FUNCTIONS ====================

func setupCartRouter(t *testing.T, reader cart.ProductReader) (*gin.Engine, cart.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := cart.NewService(context.Background(), kvstore.NewMemoryStore(), nil)
	handler := cart.NewHandler(svc, reader)

	r := gin.New()
	cart.RegisterRoutes(r.Group("/api/v1"), handler)
	return r, svc
}

func knownProducts(products ...catalog.Product) *fakeProductReader {
	return &fakeProductReader{
		GetProductFn: func(_ context.Context, id int, _ bool) (catalog.Product, error) {
			for _, p := range products {
				if p.ID == id {
					return p, nil
				}
			}
			return catalog.Product{}, &catalog.FetchError{Status: http.StatusNotFound}
		},
	}
}

// ==================== TEST CASES ====================

func TestCartHandler_Detail(t *testing.T) {
	r, svc := setupCartRouter(t, knownProducts())
	svc.AddItem(product(1, 10), 2)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    cart.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.TotalItems)
	assert.InDelta(t, 20.0, body.Data.TotalPrice, 1e-9)
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_snapshots_product", func(t *testing.T) {
		r, svc := setupCartRouter(t, knownProducts(catalog.Product{ID: 7, Title: "Gadget", Price: 19.99}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":7,"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 3, svc.QuantityOf(7))
		assert.Equal(t, "Gadget", svc.Cart().Items[0].Product.Title)
	})

	t.Run("unknown_product_is_not_found", func(t *testing.T) {
		r, svc := setupCartRouter(t, knownProducts())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":999}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, svc.Cart().Items)
	})

	t.Run("malformed_body_is_bad_request", func(t *testing.T) {
		r, _ := setupCartRouter(t, knownProducts())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("sets_quantity", func(t *testing.T) {
		r, svc := setupCartRouter(t, knownProducts())
		svc.AddItem(product(1, 10), 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, svc.QuantityOf(1))
	})

	t.Run("zero_quantity_removes_item", func(t *testing.T) {
		r, svc := setupCartRouter(t, knownProducts())
		svc.AddItem(product(1, 10), 4)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, svc.Cart().Items)
	})

	t.Run("non_numeric_id_is_bad_request", func(t *testing.T) {
		r, _ := setupCartRouter(t, knownProducts())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/abc", strings.NewReader(`{"quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	r, svc := setupCartRouter(t, knownProducts())
	svc.AddItem(product(1, 10), 1)
	svc.AddItem(product(2, 5), 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.QuantityOf(1))
	assert.Equal(t, 1, svc.QuantityOf(2))
}

func TestCartHandler_Clear(t *testing.T) {
	r, svc := setupCartRouter(t, knownProducts())
	svc.AddItem(product(1, 10), 3)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.Cart().Items)
}
