package http

import (
	"errors"
	"net/http"

	"life-admin/internal/auth"
)

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, auth.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email"
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest, "Password must be between 6 and 72 characters"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
