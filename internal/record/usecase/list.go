package usecase

import (
	"context"

	"life-admin/internal/model"
	"life-admin/internal/record"
	repo "life-admin/internal/record/repository"
)

// List returns the caller's task rows matching input.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input record.ListInput) ([]record.Record, error) {
	records, err := uc.repo.List(ctx, repo.ListOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
		OrderBy:   input.OrderBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return nil, err
	}
	return records, nil
}

// Detail returns one row of the caller, or ErrRecordNotFound.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (record.Record, error) {
	rec, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		return record.Record{}, err
	}
	if rec.ID == 0 {
		return record.Record{}, record.ErrRecordNotFound
	}
	return rec, nil
}
