package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-admin/internal/task"
	"life-admin/internal/task/repository"
)

// Login starts a new record store session. The previous user's snapshot is
// dropped before the attempt, so a failed login leaves nothing cached.
func (uc *implUseCase) Login(ctx context.Context, creds task.Credentials) error {
	opt, err := credentialsOptions(creds)
	if err != nil {
		return err
	}

	uc.snap.reset()
	if err := uc.repo.Login(ctx, opt); err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	return nil
}

// Signup registers the user and logs in with the same credentials.
func (uc *implUseCase) Signup(ctx context.Context, creds task.Credentials) error {
	opt, err := credentialsOptions(creds)
	if err != nil {
		return err
	}

	if err := uc.repo.Signup(ctx, opt); err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	return uc.Login(ctx, creds)
}

func credentialsOptions(creds task.Credentials) (repository.CredentialsOptions, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return repository.CredentialsOptions{}, task.ErrEmptyInput
	}
	return repository.CredentialsOptions{Username: username, Password: creds.Password}, nil
}
