package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-admin/internal/assistant"
	"life-admin/internal/task"
	"life-admin/internal/task/codec"
	"life-admin/pkg/datemath"
)

// Create validates a manual entry, attaches a checklist and stores the task.
// Checkboxes in ChecklistText win over AI suggestions; a failed suggestion
// call leaves the checklist empty.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.Task, error) {
	t, err := uc.taskFromInput(input)
	if err != nil {
		return task.Task{}, err
	}

	if items := uc.checklist.FromMarkdown(input.ChecklistText); len(items) > 0 {
		t.Checklist = items
	} else {
		t.Checklist = uc.suggestChecklist(ctx, t)
	}

	rec, err := uc.repo.CreateRecord(ctx, codec.Encode(t))
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "Create: created task %q id=%d", t.Title, rec.ID)
	return uc.confirmed(ctx, rec), nil
}

func (uc *implUseCase) taskFromInput(input task.CreateInput) (task.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.Task{}, fmt.Errorf("%w: title is required", task.ErrInvalidTask)
	}
	if strings.TrimSpace(input.DueDate) == "" {
		return task.Task{}, fmt.Errorf("%w: due date is required", task.ErrInvalidTask)
	}

	dueDate, err := uc.dateMath.Resolve(input.DueDate, uc.now())
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidTask, err)
	}

	dueTime := strings.TrimSpace(input.DueTime)
	if dueTime != "" && !datemath.ValidClock(dueTime) {
		return task.Task{}, fmt.Errorf("%w: due time %q is not HH:mm", task.ErrInvalidTask, dueTime)
	}

	t := task.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     dueDate,
		DueTime:     dueTime,
		Category:    input.Category,
		Priority:    input.Priority,
		Recurrence:  input.Recurrence,
		Status:      task.StatusPending,
		Checklist:   []task.ChecklistItem{},
		Documents:   []task.Document{},
	}
	if t.Category == "" {
		t.Category = task.CategoryOther
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}
	if t.Recurrence == "" {
		t.Recurrence = task.RecurrenceNone
	}
	if err := validateEnums(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// suggestChecklist asks the assistant for steps. Errors are logged and yield
// an empty checklist.
func (uc *implUseCase) suggestChecklist(ctx context.Context, t task.Task) []task.ChecklistItem {
	suggestions, err := uc.assistant.GenerateChecklist(ctx, assistant.ChecklistInput{Title: t.Title, Category: t.Category})
	if err != nil {
		uc.l.Warnf(ctx, "suggestChecklist: checklist for %q skipped (non-fatal): %v", t.Title, err)
		return []task.ChecklistItem{}
	}
	return uc.checklist.FromSuggestions(suggestions)
}

func validateEnums(t task.Task) error {
	switch {
	case !t.Category.IsValid():
		return fmt.Errorf("%w: unknown category %q", task.ErrInvalidTask, t.Category)
	case !t.Priority.IsValid():
		return fmt.Errorf("%w: unknown priority %q", task.ErrInvalidTask, t.Priority)
	case !t.Recurrence.IsValid():
		return fmt.Errorf("%w: unknown recurrence %q", task.ErrInvalidTask, t.Recurrence)
	}
	return nil
}
