package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.GetByID)
	}

	r.GET("/categories", handler.ListCategories)

	cache := r.Group("/cache")
	{
		cache.DELETE("", handler.ClearCache)
		cache.DELETE("/products", handler.InvalidateAll)
		cache.DELETE("/products/:id", handler.InvalidateProduct)
	}
}
