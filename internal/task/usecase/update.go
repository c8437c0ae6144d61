package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"life-admin/internal/task"
	"life-admin/pkg/datemath"
)

// Update replaces the stored payload of an existing task with t.
func (uc *implUseCase) Update(ctx context.Context, t task.Task) (task.Task, error) {
	current, err := uc.lookup(ctx, t.ID)
	if err != nil {
		return task.Task{}, err
	}

	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return task.Task{}, fmt.Errorf("%w: title is required", task.ErrInvalidTask)
	}
	if !datemath.ValidDate(t.DueDate) {
		return task.Task{}, fmt.Errorf("%w: due date %q is not a calendar date", task.ErrInvalidTask, t.DueDate)
	}
	if t.DueTime != "" && !datemath.ValidClock(t.DueTime) {
		return task.Task{}, fmt.Errorf("%w: due time %q is not HH:mm", task.ErrInvalidTask, t.DueTime)
	}
	if t.Status != task.StatusPending && t.Status != task.StatusCompleted {
		return task.Task{}, fmt.Errorf("%w: unknown status %q", task.ErrInvalidTask, t.Status)
	}
	if t.Recurrence == "" {
		t.Recurrence = task.RecurrenceNone
	}
	if err := validateEnums(t); err != nil {
		return task.Task{}, err
	}
	if t.Checklist == nil {
		t.Checklist = []task.ChecklistItem{}
	}
	if t.Documents == nil {
		t.Documents = []task.Document{}
	}
	if err := uc.checkDocuments(current.Documents, t.Documents); err != nil {
		return task.Task{}, err
	}

	return uc.save(ctx, t)
}

// ToggleStatus flips pending and completed. The new status is only visible
// once the store has confirmed the write and the list has been refetched.
func (uc *implUseCase) ToggleStatus(ctx context.Context, id string) (task.Task, error) {
	t, err := uc.lookup(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	t.Status = t.Status.Toggle()
	saved, err := uc.save(ctx, t)
	if err != nil {
		return task.Task{}, err
	}

	uc.l.Infof(ctx, "ToggleStatus: task %s is now %s", id, saved.Status)
	return saved, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteRecord(ctx, id); err != nil {
		if errors.Is(err, task.ErrUnauthorized) {
			uc.snap.reset()
		}
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}

	if _, err := uc.refetch(ctx); err != nil {
		uc.l.Warnf(ctx, "Delete: refetch after delete failed: %v", err)
	}
	return nil
}
