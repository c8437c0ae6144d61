package auth

import (
	"context"

	"life-admin/internal/model"
)

type UseCase interface {
	Signup(ctx context.Context, creds Credentials) (User, error)
	Login(ctx context.Context, creds Credentials) (Token, error)
	// Verify checks a bearer token and returns the caller it was issued to.
	Verify(ctx context.Context, accessToken string) (model.Scope, error)
}
