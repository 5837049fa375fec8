// Package apperr defines the error kinds shared by repositories, services
// and handlers. Callers wrap a kind with fmt.Errorf("...: %w", kind) and
// test for it with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound means the query ran and matched no row.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the caller supplied malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrDataAccess means the database could not be reached or the statement failed.
	ErrDataAccess = errors.New("data access failed")
	// ErrTimeout means the query did not finish before its deadline.
	ErrTimeout = errors.New("query timed out")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnavailable means an optional backend (search, storage) is not configured.
	ErrUnavailable = errors.New("service unavailable")
)

// HTTPStatus maps an error kind to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
