package favorites

import "go-storefront-api/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type AddRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type FavoritesResponse struct {
	Items     []catalog.Product `json:"items"`
	ItemCount int               `json:"itemCount"`
}
