package usecase

import (
	"context"
	"fmt"

	"life-admin/internal/assistant"
	"life-admin/internal/task"
)

func (uc *implUseCase) ToggleChecklistItem(ctx context.Context, taskID, itemID string) (task.Task, error) {
	t, err := uc.lookup(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}

	items, err := uc.checklist.Toggle(t.Checklist, itemID)
	if err != nil {
		return task.Task{}, err
	}
	t.Checklist = items
	return uc.save(ctx, t)
}

// RegenerateChecklist replaces the checklist with fresh suggestions.
// Unlike creation, assistant errors are returned to the caller.
func (uc *implUseCase) RegenerateChecklist(ctx context.Context, id string) (task.Task, error) {
	t, err := uc.lookup(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	suggestions, err := uc.assistant.GenerateChecklist(ctx, assistant.ChecklistInput{Title: t.Title, Category: t.Category})
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to generate checklist: %w", err)
	}

	t.Checklist = uc.checklist.FromSuggestions(suggestions)
	return uc.save(ctx, t)
}
