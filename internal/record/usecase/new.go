package usecase

import (
	"life-admin/internal/record"
	"life-admin/internal/record/repository"
	"life-admin/pkg/log"
)

// implUseCase is the private implementation of record.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new record UseCase implementation.
func New(repo repository.Repository, l log.Logger) record.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
