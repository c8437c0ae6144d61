package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"life-admin/internal/task"
	"life-admin/pkg/gemini"
)

// Ask answers a free-text question using title, due date and status of each task.
func (a *implAssistant) Ask(ctx context.Context, input AskInput) (string, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return "", task.ErrEmptyInput
	}

	tasksContext := make([]taskContext, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		tasksContext = append(tasksContext, taskContext{Title: t.Title, DueDate: t.DueDate, Status: t.Status})
	}
	contextJSON, err := json.Marshal(tasksContext)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task context: %w", err)
	}

	answer, err := a.generate(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{gemini.TextPart(SystemPromptAsk)}},
		Contents: []gemini.Content{{
			Role:  gemini.RoleUser,
			Parts: []gemini.Part{gemini.TextPart(fmt.Sprintf(PromptAsk, query, contextJSON))},
		}},
		GenerationConfig: &gemini.GenerationConfig{MaxOutputTokens: AskMaxOutputTokens},
	})
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixAsk, err)
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return FallbackAnswer, nil
	}
	return answer, nil
}
