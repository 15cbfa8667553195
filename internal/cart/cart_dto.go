package cart

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ==================== RESPONSE STRUCTS ====================

type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}
