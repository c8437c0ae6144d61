package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"life-admin/internal/auth"
	repo "life-admin/internal/auth/repository"
)

// Signup registers a new account.
func (uc *implUseCase) Signup(ctx context.Context, creds auth.Credentials) (auth.User, error) {
	email := normalizeEmail(creds.Email)
	if err := validateEmail(email); err != nil {
		return auth.User{}, err
	}
	if err := validatePassword(creds.Password); err != nil {
		return auth.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), uc.cfg.BcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GenerateFromPassword: %v", err)
		return auth.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{Email: email, PasswordHash: string(hash)})
	if errors.Is(err, repo.ErrDuplicate) {
		return auth.User{}, auth.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return auth.User{}, err
	}

	uc.l.Infof(ctx, "uc.Signup: registered user %d", user.ID)
	return user, nil
}
