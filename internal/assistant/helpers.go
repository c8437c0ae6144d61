package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"life-admin/internal/task"
	"life-admin/pkg/gemini"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// generate waits for the rate limiter, then calls the model and returns its text.
func (a *implAssistant) generate(ctx context.Context, req gemini.GenerateRequest) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := a.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	return resp.Text(), nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// violation wraps a contract failure so callers can match task.ErrContractViolation.
func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", task.ErrContractViolation, fmt.Sprintf(format, args...))
}

// describeValidation flattens validator errors into "field: reason" pairs.
func describeValidation(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	return strings.Join(messages, "; ")
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "calendardate":
		return "must be a YYYY-MM-DD calendar date"
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
