package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"life-admin/internal/auth"
)

// Login checks the password and issues an access token.
func (uc *implUseCase) Login(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	email := normalizeEmail(creds.Email)

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetUserByEmail: %v", err)
		return auth.Token{}, err
	}

	hash := uc.dummyHash
	if user.ID != 0 {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil || user.ID == 0 {
		return auth.Token{}, auth.ErrInvalidCredentials
	}

	token, err := uc.issue(user)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login issue: %v", err)
		return auth.Token{}, err
	}
	return token, nil
}
