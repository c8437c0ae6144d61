package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-admin/internal/task"
	"life-admin/internal/task/export"
	"life-admin/pkg/datemath"
	"life-admin/pkg/gcalendar"
)

func (uc *implUseCase) CalendarLink(ctx context.Context, id string) (string, error) {
	t, err := uc.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	return export.GoogleCalendarURL(t, uc.checklist.Render(t.Checklist))
}

func (uc *implUseCase) ICS(ctx context.Context, id string) (task.ICSOutput, error) {
	t, err := uc.lookup(ctx, id)
	if err != nil {
		return task.ICSOutput{}, err
	}

	content, err := export.ICS(t, uc.now())
	if err != nil {
		return task.ICSOutput{}, err
	}
	return task.ICSOutput{Filename: export.ICSFilename(t), Content: content}, nil
}

// PushToCalendar creates a Google Calendar event for the task: all-day when
// it has no time, export.EventDuration long otherwise.
func (uc *implUseCase) PushToCalendar(ctx context.Context, id string) (task.CalendarEventOutput, error) {
	if uc.calendar == nil {
		return task.CalendarEventOutput{}, task.ErrCalendarNotConfigured
	}

	t, err := uc.lookup(ctx, id)
	if err != nil {
		return task.CalendarEventOutput{}, err
	}

	loc := uc.dateMath.Location()
	start, err := datemath.Combine(t.DueDate, t.DueTime, loc)
	if err != nil {
		return task.CalendarEventOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidTask, err)
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: eventDescription(t, uc.checklist.Render(t.Checklist)),
		StartTime:   start,
		EndTime:     start.Add(export.EventDuration),
		AllDay:      t.DueTime == "",
		Timezone:    loc.String(),
	}
	if rule := export.RRule(t.Recurrence); rule != "" {
		req.Recurrence = []string{"RRULE:" + rule}
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "PushToCalendar: task %s: %v", id, err)
		return task.CalendarEventOutput{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	uc.l.Infof(ctx, "PushToCalendar: task %s -> event %s", id, event.ID)
	return task.CalendarEventOutput{EventID: event.ID, HTMLLink: event.HtmlLink}, nil
}

func eventDescription(t task.Task, checklist string) string {
	if checklist == "" {
		return t.Description
	}
	return strings.TrimSpace(t.Description + "\n\nChecklist:\n" + checklist)
}
