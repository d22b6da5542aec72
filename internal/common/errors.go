package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., email already exists
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")

	// Bearer token failure taxonomy. Expired is distinct from invalid so
	// clients can silently re-authenticate on expiry alone.
	ErrMissingAuthHeader   = errors.New("missing Authorization header")
	ErrMalformedAuthHeader = errors.New("Authorization header is missing 'Bearer ' prefix")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")

	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
//
// Missing/malformed Authorization headers intentionally map to 500: that is
// the observed contract of the system this replaces, kept until a client
// audit confirms 4xx is safe. Covered explicitly by tests.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrMissingAuthHeader) || errors.Is(err, ErrMalformedAuthHeader) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrTooManyLoginAttempts) {
		return http.StatusTooManyRequests
	}

	// Unique violations that escaped repository classification.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
