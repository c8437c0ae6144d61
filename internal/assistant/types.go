package assistant

import (
	"time"

	"life-admin/internal/task"
)

// Config tunes the assistant's rate limit and checklist cache.
type Config struct {
	RequestsPerMin int
	CacheSize      int
	CacheTTL       time.Duration
}

// ExtractInput is text or audio to extract tasks from. Audio wins when both are set.
// Today is the user's current local date, YYYY-MM-DD.
type ExtractInput struct {
	Text     string
	Audio    []byte
	MimeType string
	Today    string
}

// Candidate is a task proposed by the model, already checked against the
// extraction contract.
type Candidate struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	DueDate     string          `json:"dueDate" validate:"required,calendardate"`
	DueTime     string          `json:"dueTime"`
	Category    task.Category   `json:"category" validate:"required"`
	Priority    task.Priority   `json:"priority" validate:"required"`
	Recurrence  task.Recurrence `json:"recurrence"`
}

// ChecklistInput identifies the task a checklist is generated for.
type ChecklistInput struct {
	Title    string
	Category task.Category
}

// AskInput is a question answered against the task list.
type AskInput struct {
	Query string
	Tasks []task.Task
}

// taskContext is the slice of a task shared with the model when answering questions.
type taskContext struct {
	Title   string      `json:"title"`
	DueDate string      `json:"dueDate"`
	Status  task.Status `json:"status"`
}
