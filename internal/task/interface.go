package task

import "context"

// UseCase defines the business logic interface for the task domain.
// Every mutation is confirmed by the record store and followed by a full refetch.
type UseCase interface {
	// Dashboard fetches all tasks and builds the timeline view for one tab.
	Dashboard(ctx context.Context, input DashboardInput) (DashboardOutput, error)
	// List fetches and decodes all tasks in timeline order.
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id string) (Task, error)

	// Create stores a manually entered task.
	Create(ctx context.Context, input CreateInput) (Task, error)
	// Capture turns free-form text into tasks through the assistant.
	Capture(ctx context.Context, input CaptureInput) (CaptureOutput, error)
	// CaptureAudio turns a voice note into tasks through the assistant.
	CaptureAudio(ctx context.Context, input CaptureAudioInput) (CaptureOutput, error)

	// Update replaces the whole stored payload of a task.
	Update(ctx context.Context, t Task) (Task, error)
	ToggleStatus(ctx context.Context, id string) (Task, error)
	Delete(ctx context.Context, id string) error

	ToggleChecklistItem(ctx context.Context, taskID, itemID string) (Task, error)
	RegenerateChecklist(ctx context.Context, id string) (Task, error)

	AttachDocument(ctx context.Context, input AttachDocumentInput) (Task, error)
	RemoveDocument(ctx context.Context, taskID, documentID string) (Task, error)

	CalendarLink(ctx context.Context, id string) (string, error)
	ICS(ctx context.Context, id string) (ICSOutput, error)
	PushToCalendar(ctx context.Context, id string) (CalendarEventOutput, error)

	Ask(ctx context.Context, input AskInput) (AskOutput, error)

	Login(ctx context.Context, creds Credentials) error
	Signup(ctx context.Context, creds Credentials) error
}
