package usecase

import (
	"context"

	"life-admin/internal/model"
	"life-admin/internal/record"
	repo "life-admin/internal/record/repository"
)

// Create stores a new task row for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input record.CreateInput) (record.Record, error) {
	title, err := uc.cleanTitle(input.Title)
	if err != nil {
		return record.Record{}, err
	}

	rec, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return record.Record{}, err
	}
	return rec, nil
}
