package repository

import (
	"context"

	"life-admin/internal/auth"
)

type Repository interface {
	UserRepository
}

// UserRepository stores accounts. GetUserByEmail returns a zero User when
// no account matches.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	GetUserByEmail(ctx context.Context, email string) (auth.User, error)
}
