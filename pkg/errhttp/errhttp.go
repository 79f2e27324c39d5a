// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/assettrack/pkg/httpx"
	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	prefdomain "github.com/ghuser/assettrack/services/preferences/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; the message
// of a 500 is replaced with the generic status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

// Status exposes the mapping for callers that only need the code.
func Status(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, inventorydomain.ErrBlockNotFound),
		errors.Is(err, inventorydomain.ErrRoomNotFound),
		errors.Is(err, inventorydomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inventorydomain.ErrInvalidName),
		errors.Is(err, inventorydomain.ErrInvalidQuantity),
		errors.Is(err, inventorydomain.ErrInvalidUnitPrice),
		errors.Is(err, inventorydomain.ErrInvalidSeed),
		errors.Is(err, prefdomain.ErrInvalidTheme),
		errors.Is(err, prefdomain.ErrInvalidLogo):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, prefdomain.ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge // 413
	default:
		return http.StatusInternalServerError // 500
	}
}
