package record

import "time"

// Record is one stored task row. The store treats Description as opaque text.
type Record struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	IsCompleted bool
	CreatedAt   time.Time
}

// ListInput narrows and pages List. The zero value returns every row, oldest first.
type ListInput struct {
	Completed *bool
	Limit     int
	Offset    int
	OrderBy   string
}

type CreateInput struct {
	Title       string
	Description string
	IsCompleted bool
}

// UpdateInput replaces every mutable column of the record with ID.
type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	IsCompleted bool
}
