package cart

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be a positive integer",
		http.StatusBadRequest,
	)
)
