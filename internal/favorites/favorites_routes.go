package favorites

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	favorites := r.Group("/favorites")
	{
		favorites.GET("", handler.List)
		favorites.POST("", handler.Add)
		favorites.DELETE("", handler.Clear)
		favorites.DELETE("/:productId", handler.Remove)
	}
}
