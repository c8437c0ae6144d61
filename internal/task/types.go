package task

// DefaultMaxDocumentBytes caps attachments carried inline in the payload.
const DefaultMaxDocumentBytes = 500 * 1024

// Category is the life area a task belongs to.
type Category string

const (
	CategoryWork     Category = "Work & Career"
	CategoryPersonal Category = "Personal & Health"
	CategoryHome     Category = "Home & Family"
	CategoryFinance  Category = "Finance & Bills"
	CategoryOther    Category = "Other"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHome, CategoryFinance, CategoryOther}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

var Recurrences = []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly}

func (r Recurrence) IsValid() bool {
	for _, v := range Recurrences {
		if r == v {
			return true
		}
	}
	return false
}

// Status is the stored completion state. Overdue is derived at read time
// and never stored.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggle flips pending and completed.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ChecklistKind tells a document to gather apart from an action to take.
type ChecklistKind string

const (
	KindDocument ChecklistKind = "document"
	KindAction   ChecklistKind = "action"
)

func (k ChecklistKind) IsValid() bool {
	return k == KindDocument || k == KindAction
}

// ChecklistItem is one step of a task.
type ChecklistItem struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	IsCompleted bool          `json:"isCompleted"`
	Kind        ChecklistKind `json:"type"`
}

// Document is a file attached to a task, carried inline as a data URL.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	DataURL string `json:"dataUrl"`
}

// Task is the decoded, structured form of a stored record.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	DueDate     string          `json:"dueDate"`
	DueTime     string          `json:"dueTime,omitempty"`
	Category    Category        `json:"category"`
	Priority    Priority        `json:"priority"`
	Recurrence  Recurrence      `json:"recurrence,omitempty"`
	Status      Status          `json:"status"`
	Checklist   []ChecklistItem `json:"checklist"`
	Documents   []Document      `json:"documents"`
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Tab selects one of the dashboard timeline buckets.
type Tab string

const (
	TabToday  Tab = "today"
	TabFuture Tab = "future"
	TabPast   Tab = "past"
)

func (t Tab) IsValid() bool {
	return t == TabToday || t == TabFuture || t == TabPast
}

// Counts are the dashboard statistics, recomputed from the full list on every read.
type Counts struct {
	Pending  int `json:"pending"`
	Overdue  int `json:"overdue"`
	ThisWeek int `json:"thisWeek"`
}

// DashboardItem is a task with its read-time derived fields.
type DashboardItem struct {
	Task       Task
	DayOffset  int
	Dated      bool
	Late       bool
	StepsDone  int
	StepsTotal int
}

// DashboardInput selects the timeline bucket to show.
type DashboardInput struct {
	Tab Tab
}

// DashboardOutput is the dashboard view of the task list.
type DashboardOutput struct {
	Greeting string
	Today    string
	Tab      Tab
	Items    []DashboardItem
	Undated  []DashboardItem
	Counts   Counts
}

// CreateInput is a manually entered task.
// When ChecklistText holds markdown checkboxes they are used instead of AI suggestions.
type CreateInput struct {
	Title         string
	Description   string
	DueDate       string
	DueTime       string
	Category      Category
	Priority      Priority
	Recurrence    Recurrence
	ChecklistText string
}

// CaptureInput is free-form text to turn into tasks.
type CaptureInput struct {
	Text string
}

// CaptureAudioInput is a voice note to turn into tasks. MimeType may be empty,
// in which case it is detected from the content.
type CaptureAudioInput struct {
	Audio    []byte
	MimeType string
}

// CaptureOutput lists the tasks created by a capture.
type CaptureOutput struct {
	Tasks     []Task
	TaskCount int
}

// AttachDocumentInput is a file to attach to a task.
type AttachDocumentInput struct {
	TaskID string
	Name   string
	Data   []byte
}

// ICSOutput is a calendar file ready for download.
type ICSOutput struct {
	Filename string
	Content  string
}

// CalendarEventOutput describes an event created in Google Calendar.
type CalendarEventOutput struct {
	EventID  string
	HTMLLink string
}

// AskInput is a free-text question about the user's tasks.
type AskInput struct {
	Query string
}

type AskOutput struct {
	Answer string
}

// Credentials authenticate against the record store.
type Credentials struct {
	Username string
	Password string
}
