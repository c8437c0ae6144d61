package datemath

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
// Impossible dates such as 2024-02-30 are rejected.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s, time.UTC)
	return err == nil
}

// ParseClock parses an HH:mm string.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != len(ClockLayout) {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// ValidClock reports whether s is an HH:mm time.
func ValidClock(s string) bool {
	_, _, err := ParseClock(s)
	return err == nil
}

// DayOffset returns the number of calendar days from the day containing now
// (in loc) to date. Wall-clock time and DST shifts do not affect the result.
func DayOffset(date string, now time.Time, loc *time.Location) (int, error) {
	d, err := ParseDate(date, time.UTC)
	if err != nil {
		return 0, err
	}
	return int(d.Sub(civil(now, loc)) / day), nil
}

// Today formats the calendar date containing now in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// Combine joins a date and an optional HH:mm time into an instant in loc.
// An empty clock yields midnight.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if clock == "" {
		return d, nil
	}
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, loc), nil
}

// civil maps the calendar date of t in loc onto UTC midnight so that
// subtracting two results always gives a whole number of days.
func civil(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
