package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/checkout"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	CheckoutFn func(ctx context.Context, req checkout.CheckoutRequest) (checkout.CheckoutResponse, error)
}

func (f *fakeCheckoutService) Checkout(ctx context.Context, req checkout.CheckoutRequest) (checkout.CheckoutResponse, error) {
	return f.CheckoutFn(ctx, req)
}

func setupCheckoutRouter(t *testing.T, svc checkout.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	checkout.RegisterRoutes(r.Group("/api/v1"), checkout.NewHandler(svc))
	return r
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCheckoutService{
			CheckoutFn: func(_ context.Context, req checkout.CheckoutRequest) (checkout.CheckoutResponse, error) {
				assert.Equal(t, "jane@example.com", req.Email)
				return checkout.CheckoutResponse{OrderNumber: "order-1", Total: 27.59}, nil
			},
		}
		r := setupCheckoutRouter(t, svc)

		payload := `{
			"name": "Jane Doe",
			"email": "jane@example.com",
			"phone": "555-0100",
			"address": "1 Main St",
			"city": "Springfield",
			"zipCode": "12345",
			"paymentMethod": "cash_on_delivery"
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Data checkout.CheckoutResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "order-1", body.Data.OrderNumber)
	})

	t.Run("empty_cart_is_conflict", func(t *testing.T) {
		svc := &fakeCheckoutService{
			CheckoutFn: func(context.Context, checkout.CheckoutRequest) (checkout.CheckoutResponse, error) {
				return checkout.CheckoutResponse{}, checkout.ErrEmptyCart
			},
		}
		r := setupCheckoutRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed_body_is_bad_request", func(t *testing.T) {
		called := false
		svc := &fakeCheckoutService{
			CheckoutFn: func(context.Context, checkout.CheckoutRequest) (checkout.CheckoutResponse, error) {
				called = true
				return checkout.CheckoutResponse{}, nil
			},
		}
		r := setupCheckoutRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}
