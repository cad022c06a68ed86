// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/blooprint/pkg/httpx"
	userdomain "github.com/ghuser/blooprint/services/identity/domain"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrItemAlreadyExists),
		errors.Is(err, itemdomain.ErrInvalidItem),
		errors.Is(err, userdomain.ErrUserAlreadyExists):
		return http.StatusBadRequest // 400, validation failures
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}
