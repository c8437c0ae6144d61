package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput            = errors.New("input is empty")
	ErrInvalidTask           = errors.New("invalid task")
	ErrInvalidTab            = errors.New("unknown dashboard tab")
	ErrTaskNotFound          = errors.New("task not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentTooLarge      = errors.New("document too large")
	ErrContractViolation     = errors.New("AI response violates contract")
	ErrNoTasksParsed         = errors.New("no tasks parsed from input")
	ErrUnauthorized          = errors.New("session expired or not authenticated")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
