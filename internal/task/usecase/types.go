package usecase

import (
	"context"
	"time"

	"life-admin/pkg/gcalendar"
)

const (
	defaultDocumentName = "document"
)

// Calendar creates events in an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the use case. Zero values fall back to defaults.
type Config struct {
	MaxDocumentBytes int
	CalendarID       string
	Now              func() time.Time
}
