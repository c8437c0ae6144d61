package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"life-admin/internal/checklist"
	"life-admin/internal/task"
	"life-admin/pkg/gemini"
)

// GenerateChecklist returns cached suggestions when the same task was seen
// recently. An empty result is valid and means no breakdown is needed.
func (a *implAssistant) GenerateChecklist(ctx context.Context, input ChecklistInput) ([]checklist.Suggestion, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, task.ErrEmptyInput
	}

	key := cacheKey(title, input.Category)
	if cached, ok := a.cache.Get(key); ok {
		a.l.Debugf(ctx, "%s: cache hit for %q", LogPrefixChecklist, title)
		return append([]checklist.Suggestion(nil), cached...), nil
	}

	raw, err := a.generate(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  gemini.RoleUser,
			Parts: []gemini.Part{gemini.TextPart(fmt.Sprintf(PromptChecklist, MaxChecklistItems, title, input.Category))},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      ChecklistTemperature,
			ResponseMimeType: gemini.MimeTypeJSON,
			ResponseSchema:   checklistSchema,
		},
	})
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixChecklist, err)
		return nil, err
	}

	suggestions, err := a.parseSuggestions(raw)
	if err != nil {
		a.l.Warnf(ctx, "%s: rejected response %q: %v", LogPrefixChecklist, raw, err)
		return nil, err
	}

	a.cache.Add(key, suggestions)
	return append([]checklist.Suggestion(nil), suggestions...), nil
}

func (a *implAssistant) parseSuggestions(raw string) ([]checklist.Suggestion, error) {
	var envelope struct {
		Items *[]json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &envelope); err != nil {
		return nil, violation("response is not a JSON object: %v", err)
	}
	if envelope.Items == nil {
		return nil, violation("response has no items field")
	}

	elems := *envelope.Items
	if len(elems) > MaxChecklistItems {
		elems = elems[:MaxChecklistItems]
	}

	suggestions := make([]checklist.Suggestion, 0, len(elems))
	for i, elem := range elems {
		var s checklist.Suggestion
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil, violation("item %d: %v", i, err)
		}
		s.Text = strings.TrimSpace(s.Text)
		if err := a.validate.Struct(s); err != nil {
			return nil, violation("item %d: %s", i, describeValidation(err))
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

func cacheKey(title string, category task.Category) string {
	return string(category) + "\x00" + strings.ToLower(title)
}
