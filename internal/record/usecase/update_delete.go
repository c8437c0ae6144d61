package usecase

import (
	"context"

	"life-admin/internal/model"
	"life-admin/internal/record"
	repo "life-admin/internal/record/repository"
)

// Update replaces a row of the caller. Returns ErrRecordNotFound when the row
// does not exist or belongs to someone else.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input record.UpdateInput) (record.Record, error) {
	title, err := uc.cleanTitle(input.Title)
	if err != nil {
		return record.Record{}, err
	}

	rec, err := uc.repo.Update(ctx, repo.UpdateOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return record.Record{}, err
	}
	if rec.ID == 0 {
		return record.Record{}, record.ErrRecordNotFound
	}
	return rec, nil
}

// Delete removes a row of the caller. Returns ErrRecordNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	deleted, err := uc.repo.Delete(ctx, repo.DeleteOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	if !deleted {
		return record.ErrRecordNotFound
	}
	return nil
}
