package catalog

import (
	"net/http"
	"strconv"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /products?limit=20&skip=0&search=...&category=...&fresh=true
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	req := ListProductsRequest{
		Limit:       limit,
		Skip:        skip,
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		BypassCache: c.Query("fresh") == "true",
	}

	res, err := h.service.GetProducts(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(mapFetchError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	response.Success(c, http.StatusOK, res.Products, makePagination(limit, skip, res.Total))
}

// GET /products/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id, c.Query("fresh") == "true")
	if err != nil {
		httpErr := apperror.ToHTTP(mapFetchError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, product, nil)
}

// GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context(), c.Query("fresh") == "true")
	if err != nil {
		httpErr := apperror.ToHTTP(mapFetchError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, categories, nil)
}

// DELETE /cache
func (h *Handler) ClearCache(c *gin.Context) {
	h.service.ClearCache(c.Request.Context())
	response.Success(c, http.StatusOK, nil, nil)
}

// DELETE /cache/products/:id  — without an id the broad invalidation runs.
func (h *Handler) InvalidateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.service.InvalidateProduct(c.Request.Context(), id)
	response.Success(c, http.StatusOK, nil, nil)
}

// DELETE /cache/products
func (h *Handler) InvalidateAll(c *gin.Context) {
	h.service.InvalidateAll(c.Request.Context())
	response.Success(c, http.StatusOK, nil, nil)
}

func makePagination(limit, skip, total int) *response.PaginationMeta {
	page := 1
	totalPages := 0
	if limit > 0 {
		page = skip/limit + 1
		totalPages = (total + limit - 1) / limit
	}

	return &response.PaginationMeta{
		Total:      int64(total),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}
