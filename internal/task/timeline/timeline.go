// Package timeline orders tasks and splits them into today, future and past
// views relative to the current calendar day.
package timeline

import (
	"cmp"
	"slices"
	"time"

	"life-admin/internal/checklist"
	"life-admin/internal/task"
	"life-admin/pkg/datemath"
)

const (
	weekDays = 7

	defaultClock = "00:00"
)

// Buckets partitions a sorted task list by day offset. Tasks whose due date
// cannot be read as a calendar date land in Undated only.
type Buckets struct {
	Today   []task.Task
	Future  []task.Task
	Past    []task.Task
	Undated []task.Task
}

// Classifier derives timeline views from a task list. The current time is
// read once per call, so every figure in one result agrees on "today".
type Classifier struct {
	loc       *time.Location
	now       func() time.Time
	checklist checklist.Service
}

// New creates a Classifier computing calendar days in loc.
// now defaults to time.Now when nil.
func New(loc *time.Location, now func() time.Time) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Classifier{loc: loc, now: now, checklist: checklist.New()}
}

// Today returns the current calendar date in the classifier's location.
func (c *Classifier) Today() string {
	return datemath.Today(c.now(), c.loc)
}

// DayOffset returns the days from today to dueDate. ok is false when
// dueDate is not a calendar date.
func (c *Classifier) DayOffset(dueDate string) (offset int, ok bool) {
	return dayOffset(dueDate, c.now(), c.loc)
}

func dayOffset(dueDate string, now time.Time, loc *time.Location) (int, bool) {
	offset, err := datemath.DayOffset(dueDate, now, loc)
	if err != nil {
		return 0, false
	}
	return offset, true
}

// Sort returns a new slice with pending tasks before completed ones, each
// group ordered by due date then due time (00:00 when absent). Undated tasks
// follow the dated tasks of their group. Equal keys keep input order.
func (c *Classifier) Sort(tasks []task.Task) []task.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, compare)
	return out
}

func compare(a, b task.Task) int {
	if a.IsCompleted() != b.IsCompleted() {
		if a.IsCompleted() {
			return 1
		}
		return -1
	}

	aDated, bDated := datemath.ValidDate(a.DueDate), datemath.ValidDate(b.DueDate)
	if aDated != bDated {
		if aDated {
			return -1
		}
		return 1
	}
	if !aDated {
		return 0
	}

	// YYYY-MM-DD and HH:mm sort lexically in time order.
	return cmp.Or(
		cmp.Compare(a.DueDate, b.DueDate),
		cmp.Compare(clock(a.DueTime), clock(b.DueTime)),
	)
}

func clock(dueTime string) string {
	if datemath.ValidClock(dueTime) {
		return dueTime
	}
	return defaultClock
}

// Buckets sorts tasks and splits them by day offset.
func (c *Classifier) Buckets(tasks []task.Task) Buckets {
	return c.buckets(tasks, c.now())
}

func (c *Classifier) buckets(tasks []task.Task, now time.Time) Buckets {
	b := Buckets{
		Today:   []task.Task{},
		Future:  []task.Task{},
		Past:    []task.Task{},
		Undated: []task.Task{},
	}

	for _, t := range c.Sort(tasks) {
		offset, ok := dayOffset(t.DueDate, now, c.loc)
		switch {
		case !ok:
			b.Undated = append(b.Undated, t)
		case offset == 0:
			b.Today = append(b.Today, t)
		case offset > 0:
			b.Future = append(b.Future, t)
		default:
			b.Past = append(b.Past, t)
		}
	}
	return b
}

// Tab returns the bucket shown under tab, or nil for an unknown tab.
func (b Buckets) Tab(tab task.Tab) []task.Task {
	switch tab {
	case task.TabToday:
		return b.Today
	case task.TabFuture:
		return b.Future
	case task.TabPast:
		return b.Past
	}
	return nil
}

// Counts computes the dashboard statistics over the full list.
func (c *Classifier) Counts(tasks []task.Task) task.Counts {
	return counts(tasks, c.now(), c.loc)
}

func counts(tasks []task.Task, now time.Time, loc *time.Location) task.Counts {
	var out task.Counts
	for _, t := range tasks {
		if t.Status == task.StatusPending {
			out.Pending++
		}
		if t.IsCompleted() {
			continue
		}
		offset, ok := dayOffset(t.DueDate, now, loc)
		if !ok {
			continue
		}
		if offset < 0 {
			out.Overdue++
		}
		if offset >= 0 && offset <= weekDays {
			out.ThisWeek++
		}
	}
	return out
}

// IsOverdue reports whether t is open and due before today.
func (c *Classifier) IsOverdue(t task.Task) bool {
	if t.IsCompleted() {
		return false
	}
	offset, ok := c.DayOffset(t.DueDate)
	return ok && offset < 0
}

// Greeting returns the salutation for the current hour.
func (c *Classifier) Greeting() string {
	return greeting(c.now().In(c.loc).Hour())
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Dashboard builds the full dashboard view for one tab.
func (c *Classifier) Dashboard(tasks []task.Task, tab task.Tab) task.DashboardOutput {
	now := c.now()
	b := c.buckets(tasks, now)

	out := task.DashboardOutput{
		Greeting: greeting(now.In(c.loc).Hour()),
		Today:    datemath.Today(now, c.loc),
		Tab:      tab,
		Items:    make([]task.DashboardItem, 0, len(b.Tab(tab))),
		Undated:  make([]task.DashboardItem, 0, len(b.Undated)),
		Counts:   counts(tasks, now, c.loc),
	}
	for _, t := range b.Tab(tab) {
		out.Items = append(out.Items, c.dashboardItem(t, now))
	}
	for _, t := range b.Undated {
		out.Undated = append(out.Undated, c.dashboardItem(t, now))
	}
	return out
}

func (c *Classifier) dashboardItem(t task.Task, now time.Time) task.DashboardItem {
	offset, ok := dayOffset(t.DueDate, now, c.loc)
	stats := c.checklist.GetStats(t.Checklist)
	return task.DashboardItem{
		Task:       t,
		DayOffset:  offset,
		Dated:      ok,
		Late:       ok && offset < 0 && !t.IsCompleted(),
		StepsDone:  stats.Completed,
		StepsTotal: stats.Total,
	}
}
