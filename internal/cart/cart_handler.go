package cart

import (
	"context"
	"net/http"
	"strconv"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProductReader is the slice of the catalog the cart needs: a product
// snapshot at add time.
type ProductReader interface {
	GetProduct(ctx context.Context, id int, bypassCache bool) (catalog.Product, error)
}

type Handler struct {
	service Service
	catalog ProductReader
}

func NewHandler(service Service, catalog ProductReader) *Handler {
	return &Handler{service: service, catalog: catalog}
}

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	cart := h.service.Cart()
	response.Success(c, http.StatusOK, CartResponse(cart), nil)
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID, false)
	if err != nil {
		httpErr := apperror.ToHTTP(catalog.ErrProductNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	h.service.AddItem(product, req.Quantity)
	response.Success(c, http.StatusCreated, CartResponse(h.service.Cart()), nil)
}

// PATCH /cart/items/:productId — quantity <= 0 removes the line item.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	h.service.SetQuantity(productID, req.Quantity)
	response.Success(c, http.StatusOK, CartResponse(h.service.Cart()), nil)
}

// DELETE /cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.service.RemoveItem(productID)
	response.Success(c, http.StatusOK, CartResponse(h.service.Cart()), nil)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	h.service.Clear()
	response.Success(c, http.StatusOK, nil, nil)
}
