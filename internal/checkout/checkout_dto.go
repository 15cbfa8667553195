package checkout

import "time"

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`

	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit_card cash_on_delivery"`

	// Card fields are required only for credit_card payments.
	CardNumber     string `json:"cardNumber" validate:"required_if=PaymentMethod credit_card"`
	ExpiryDate     string `json:"expiryDate" validate:"required_if=PaymentMethod credit_card"`
	CVV            string `json:"cvv" validate:"required_if=PaymentMethod credit_card"`
	CardholderName string `json:"cardholderName" validate:"required_if=PaymentMethod credit_card"`
}

// ==================== RESPONSE STRUCTS ====================

type CheckoutResponse struct {
	OrderNumber string    `json:"orderNumber"`
	TotalItems  int       `json:"totalItems"`
	Subtotal    float64   `json:"subtotal"`
	Shipping    float64   `json:"shipping"`
	Tax         float64   `json:"tax"`
	Total       float64   `json:"total"`
	PlacedAt    time.Time `json:"placedAt"`
}
