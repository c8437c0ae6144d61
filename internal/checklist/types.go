package checklist

import "life-admin/internal/task"

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int     // Total items
	Completed int     // Completed items
	Pending   int     // Open items
	Progress  float64 // Completion percentage (0-100)
}

// Suggestion is a checklist step proposed by the assistant.
type Suggestion struct {
	Text string             `json:"text" validate:"required"`
	Kind task.ChecklistKind `json:"type" validate:"required,oneof=document action"`
}
