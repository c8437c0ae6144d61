package http

import (
	"errors"
	"net/http"

	"life-admin/internal/record"
)

var (
	errInvalidID    = errors.New("invalid task id")
	errMissingScope = errors.New("not authenticated")
)

// mapError translates use-case errors into a status and a detail message.
// Unknown errors become a 500 without leaking the cause.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.Is(err, record.ErrInvalidPayload):
		return http.StatusBadRequest, "Title is required"
	case errors.Is(err, errInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errMissingScope):
		return http.StatusUnauthorized, "Not authenticated"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
