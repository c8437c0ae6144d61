package usecase

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"life-admin/internal/auth"
	"life-admin/internal/auth/repository"
	"life-admin/pkg/log"
)

const (
	// MinPasswordLength is the shortest password signup accepts.
	MinPasswordLength = 6
	// bcrypt only looks at the first 72 bytes.
	maxPasswordLength = 72
)

// Config holds the token settings.
type Config struct {
	Secret     []byte
	TTL        time.Duration
	Issuer     string
	BcryptCost int
	Now        func() time.Time
}

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	cfg  Config

	// dummyHash is compared against when the email is unknown so both
	// login failures cost one bcrypt round.
	dummyHash []byte
}

// New creates the auth UseCase.
func New(l log.Logger, repo repository.Repository, cfg Config) (auth.UseCase, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("auth: secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("auth: token ttl must be positive")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("life-admin-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to prepare dummy hash: %w", err)
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		cfg:       cfg,
		dummyHash: dummy,
	}, nil
}
