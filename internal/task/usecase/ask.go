package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-admin/internal/assistant"
	"life-admin/internal/task"
)

// Ask answers a question about the user's tasks using the latest snapshot,
// fetching it first when nothing has been loaded yet.
func (uc *implUseCase) Ask(ctx context.Context, input task.AskInput) (task.AskOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return task.AskOutput{}, task.ErrEmptyInput
	}

	tasks, loaded := uc.snap.all()
	if !loaded {
		var err error
		if tasks, err = uc.refetch(ctx); err != nil {
			return task.AskOutput{}, err
		}
	}

	uc.l.Infof(ctx, "Ask: query=%q tasks=%d", query, len(tasks))

	answer, err := uc.assistant.Ask(ctx, assistant.AskInput{Query: query, Tasks: tasks})
	if err != nil {
		return task.AskOutput{}, fmt.Errorf("failed to answer query: %w", err)
	}
	return task.AskOutput{Answer: answer}, nil
}
