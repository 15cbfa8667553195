package catalog

import (
	"errors"
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrCatalogUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Catalog is unavailable",
		http.StatusBadGateway,
	)
)

// mapFetchError translates a client failure for the HTTP layer: an
// upstream 404 stays a 404, everything else is a retryable gateway error.
func mapFetchError(err error) error {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) && fetchErr.Status == http.StatusNotFound {
		return ErrProductNotFound
	}
	return apperror.Wrap(err, apperror.CodeUpstreamError, "Catalog is unavailable", http.StatusBadGateway)
}
