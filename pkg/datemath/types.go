package datemath

import "time"

const (
	// DateLayout is the calendar-date form tasks are stored with.
	DateLayout = "2006-01-02"
	// ClockLayout is the optional wall-clock time of a task.
	ClockLayout = "15:04"

	day = 24 * time.Hour
)
