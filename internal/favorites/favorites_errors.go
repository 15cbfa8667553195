package favorites

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var ErrInvalidProductID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid product ID",
	http.StatusBadRequest,
)
