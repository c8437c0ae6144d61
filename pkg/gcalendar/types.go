package gcalendar

import "time"

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
	dateLayout        = "2006-01-02"
)

// CreateEventRequest is the input for creating a Google Calendar event.
// When AllDay is set only the date of StartTime is used.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string   // e.g. "Asia/Dubai"
	Recurrence  []string // RRULE lines
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
