package http

import (
	"errors"
	"net/http"

	"life-admin/internal/task"
)

var (
	errMissingID   = errors.New("id is required")
	errMissingFile = errors.New("file is required")
)

// mapError translates use-case errors into an HTTP status and a client-safe message.
func (h *handler) mapError(err error) (int, error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidTask),
		errors.Is(err, task.ErrInvalidTab):
		return http.StatusBadRequest, err
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrChecklistItemNotFound),
		errors.Is(err, task.ErrDocumentNotFound):
		return http.StatusNotFound, err
	case errors.Is(err, task.ErrUnauthorized):
		return http.StatusUnauthorized, task.ErrUnauthorized
	case errors.Is(err, task.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge, task.ErrDocumentTooLarge
	case errors.Is(err, task.ErrNoTasksParsed):
		return http.StatusUnprocessableEntity, task.ErrNoTasksParsed
	case errors.Is(err, task.ErrContractViolation):
		return http.StatusBadGateway, task.ErrContractViolation
	case errors.Is(err, task.ErrCalendarNotConfigured):
		return http.StatusServiceUnavailable, task.ErrCalendarNotConfigured
	default:
		return http.StatusInternalServerError, nil
	}
}
