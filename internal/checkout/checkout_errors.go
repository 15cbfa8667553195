package checkout

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodeConflict,
		"Cannot check out an empty cart",
		http.StatusConflict,
	)

	ErrInvalidCheckout = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid checkout information",
		http.StatusBadRequest,
	)
)
