// Package export renders a task as a Google Calendar template link or an
// iCalendar file.
package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"life-admin/internal/task"
	"life-admin/pkg/datemath"
)

const (
	calendarRenderURL = "https://calendar.google.com/calendar/render"

	icsDateLayout     = "20060102"
	icsDateTimeLayout = "20060102T150405"
	icsStampLayout    = "20060102T150405Z"

	// EventDuration is the length given to timed events.
	EventDuration = time.Hour
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// GoogleCalendarURL builds a calendar.google.com template link for t.
// checklist is the rendered checklist appended to the event details.
func GoogleCalendarURL(t task.Task, checklist string) (string, error) {
	stamp, err := stamp(t)
	if err != nil {
		return "", err
	}

	details := t.Description + " \n\nChecklist:\n" + checklist

	return calendarRenderURL +
		"?action=TEMPLATE" +
		"&text=" + encodeURIComponent(t.Title) +
		"&dates=" + stamp + "/" + stamp +
		"&details=" + encodeURIComponent(details), nil
}

// ICS renders t as a single-event iCalendar document with CRLF line endings.
func ICS(t task.Task, now time.Time) (string, error) {
	start, err := datemath.Combine(t.DueDate, t.DueTime, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %v", task.ErrInvalidTask, err)
	}

	uid := fmt.Sprintf("task-%s@life-admin", t.ID)
	if t.ID == "" {
		uid = fmt.Sprintf("task-export-%d@life-admin", now.UnixNano())
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Life Admin//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(uid),
		"DTSTAMP:" + now.UTC().Format(icsStampLayout),
	}
	if t.DueTime == "" {
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+start.Format(icsDateLayout),
			"DTEND;VALUE=DATE:"+start.AddDate(0, 0, 1).Format(icsDateLayout),
		)
	} else {
		lines = append(lines,
			"DTSTART;VALUE=DATE-TIME:"+start.Format(icsDateTimeLayout),
			"DTEND;VALUE=DATE-TIME:"+start.Add(EventDuration).Format(icsDateTimeLayout),
		)
	}
	lines = append(lines,
		"SUMMARY:"+escapeICSText(t.Title),
		"DESCRIPTION:"+escapeICSText(t.Description),
	)
	if rrule := RRule(t.Recurrence); rrule != "" {
		lines = append(lines, "RRULE:"+rrule)
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n"), nil
}

// ICSFilename is the download name for t's calendar file.
func ICSFilename(t task.Task) string {
	return whitespaceRe.ReplaceAllString(t.Title, "_") + ".ics"
}

// RRule maps a recurrence onto an RFC 5545 rule. None and unknown values yield "".
func RRule(r task.Recurrence) string {
	switch r {
	case task.RecurrenceDaily:
		return "FREQ=DAILY"
	case task.RecurrenceWeekly:
		return "FREQ=WEEKLY"
	case task.RecurrenceMonthly:
		return "FREQ=MONTHLY"
	case task.RecurrenceYearly:
		return "FREQ=YEARLY"
	}
	return ""
}

// stamp is the compact date, plus THHmm00 when the task has a time.
func stamp(t task.Task) (string, error) {
	if !datemath.ValidDate(t.DueDate) {
		return "", fmt.Errorf("%w: due date %q is not a calendar date", task.ErrInvalidTask, t.DueDate)
	}
	s := strings.ReplaceAll(t.DueDate, "-", "")
	if t.DueTime != "" {
		if !datemath.ValidClock(t.DueTime) {
			return "", fmt.Errorf("%w: due time %q is not HH:mm", task.ErrInvalidTask, t.DueTime)
		}
		s += "T" + strings.Replace(t.DueTime, ":", "", 1) + "00"
	}
	return s, nil
}

// encodeURIComponent escapes s the way browsers do for a URI component:
// spaces become %20 and !'()* stay literal.
func encodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
