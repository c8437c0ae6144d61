package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"life-admin/internal/task"
	"life-admin/pkg/datemath"
	"life-admin/pkg/gemini"
)

// ExtractTasks sends text or audio to the model and validates every candidate.
// A single bad candidate fails the whole call so nothing half-formed is created.
func (a *implAssistant) ExtractTasks(ctx context.Context, input ExtractInput) ([]Candidate, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" && len(input.Audio) == 0 {
		return nil, task.ErrEmptyInput
	}

	var parts []gemini.Part
	if len(input.Audio) > 0 {
		mimeType := input.MimeType
		if mimeType == "" {
			mimeType = mimetype.Detect(input.Audio).String()
		}
		parts = []gemini.Part{
			gemini.InlinePart(mimeType, input.Audio),
			gemini.TextPart(fmt.Sprintf(PromptExtractAudio, input.Today)),
		}
	} else {
		parts = []gemini.Part{gemini.TextPart(fmt.Sprintf(PromptExtractText, input.Today, text))}
	}

	raw, err := a.generate(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{gemini.TextPart(SystemPromptExtract)}},
		Contents:          []gemini.Content{{Role: gemini.RoleUser, Parts: parts}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      ExtractTemperature,
			ResponseMimeType: gemini.MimeTypeJSON,
			ResponseSchema:   extractSchema,
		},
	})
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixExtract, err)
		return nil, err
	}

	candidates, err := a.parseCandidates(ctx, raw)
	if err != nil {
		a.l.Warnf(ctx, "%s: rejected response %q: %v", LogPrefixExtract, raw, err)
		return nil, err
	}

	a.l.Infof(ctx, "%s: extracted %d candidates", LogPrefixExtract, len(candidates))
	return candidates, nil
}

func (a *implAssistant) parseCandidates(ctx context.Context, raw string) ([]Candidate, error) {
	var envelope struct {
		Tasks *[]json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &envelope); err != nil {
		return nil, violation("response is not a JSON object: %v", err)
	}
	if envelope.Tasks == nil {
		return nil, violation("response has no tasks field")
	}

	candidates := make([]Candidate, 0, len(*envelope.Tasks))
	for i, elem := range *envelope.Tasks {
		var c Candidate
		if err := json.Unmarshal(elem, &c); err != nil {
			return nil, violation("task %d: %v", i, err)
		}

		c.Title = strings.TrimSpace(c.Title)
		c.Description = strings.TrimSpace(c.Description)
		c.DueDate = strings.TrimSpace(c.DueDate)
		c.DueTime = strings.TrimSpace(c.DueTime)

		if err := a.validate.Struct(c); err != nil {
			return nil, violation("task %d: %s", i, describeValidation(err))
		}

		a.coerce(ctx, i, &c)
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// coerce maps values outside the closed enumerations onto defaults.
func (a *implAssistant) coerce(ctx context.Context, i int, c *Candidate) {
	if !c.Category.IsValid() {
		a.l.Warnf(ctx, "%s: task %d: unknown category %q, using %q", LogPrefixExtract, i, c.Category, task.CategoryOther)
		c.Category = task.CategoryOther
	}
	if !c.Priority.IsValid() {
		a.l.Warnf(ctx, "%s: task %d: unknown priority %q, using %q", LogPrefixExtract, i, c.Priority, task.PriorityMedium)
		c.Priority = task.PriorityMedium
	}
	if c.Recurrence == "" {
		c.Recurrence = task.RecurrenceNone
	} else if !c.Recurrence.IsValid() {
		a.l.Warnf(ctx, "%s: task %d: unknown recurrence %q, using %q", LogPrefixExtract, i, c.Recurrence, task.RecurrenceNone)
		c.Recurrence = task.RecurrenceNone
	}
	if c.DueTime != "" && !datemath.ValidClock(c.DueTime) {
		a.l.Warnf(ctx, "%s: task %d: dropping malformed due time %q", LogPrefixExtract, i, c.DueTime)
		c.DueTime = ""
	}
}
