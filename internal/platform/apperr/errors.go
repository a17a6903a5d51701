// Package apperr defines the failure kinds shared by all entity services.
// Storage errors are never wrapped into one of these; they propagate
// unchanged so the handler layer can surface them as internal errors.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound means the requested id has no corresponding row.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the row exists but belongs to another owner.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnauthenticated means no caller identity was provided.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation means the request payload violates a service invariant.
	ErrValidation = errors.New("validation failed")
)

// HTTPStatus maps a service error to its HTTP status code. Anything not in
// the taxonomy is a storage failure and maps to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
