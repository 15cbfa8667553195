package favorites

import (
	"context"
	"net/http"
	"strconv"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

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

// GET /favorites
func (h *Handler) List(c *gin.Context) {
	items := h.service.List()
	response.Success(c, http.StatusOK, FavoritesResponse{
		Items:     items,
		ItemCount: len(items),
	}, nil)
}

// POST /favorites
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
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

	h.service.Add(product)
	response.Success(c, http.StatusCreated, nil, nil)
}

// DELETE /favorites/:productId
func (h *Handler) Remove(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.service.Remove(productID)
	response.Success(c, http.StatusOK, nil, nil)
}

// DELETE /favorites
func (h *Handler) Clear(c *gin.Context) {
	h.service.Clear()
	response.Success(c, http.StatusOK, nil, nil)
}
