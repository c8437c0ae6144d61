package usecase_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"life-admin/internal/assistant"
	"life-admin/internal/checklist"
	"life-admin/internal/model"
	"life-admin/internal/task"
	"life-admin/internal/task/codec"
	"life-admin/internal/task/repository"
	"life-admin/internal/task/usecase"
	"life-admin/pkg/datemath"
	"life-admin/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory record store.
type mockRepo struct {
	mu        sync.Mutex
	records   []model.Record
	nextID    int64
	listCalls int
	creates   int

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	loginErr  error
	loggedIn  string
	signedUp  string
}

func newMockRepo(tasks ...task.Task) *mockRepo {
	r := &mockRepo{nextID: 1}
	for _, t := range tasks {
		r.add(t)
	}
	return r
}

func (r *mockRepo) add(t task.Task) model.Record {
	in := codec.Encode(t)
	rec := model.Record{
		ID:          r.nextID,
		Title:       in.Title,
		Description: in.Description,
		IsCompleted: in.IsCompleted,
		CreatedAt:   "2024-05-01T08:00:00Z",
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec
}

func (r *mockRepo) ListRecords(ctx context.Context) ([]model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return slices.Clone(r.records), nil
}

func (r *mockRepo) CreateRecord(ctx context.Context, input model.RecordInput) (model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return model.Record{}, r.createErr
	}
	r.creates++
	rec := model.Record{
		ID:          r.nextID,
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
		CreatedAt:   "2024-05-15T06:00:00Z",
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *mockRepo) UpdateRecord(ctx context.Context, id string, input model.RecordInput) (model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return model.Record{}, r.updateErr
	}
	for i, rec := range r.records {
		if strconv.FormatInt(rec.ID, 10) == id {
			rec.Title = input.Title
			rec.Description = input.Description
			rec.IsCompleted = input.IsCompleted
			r.records[i] = rec
			return rec, nil
		}
	}
	return model.Record{}, task.ErrTaskNotFound
}

func (r *mockRepo) DeleteRecord(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, rec := range r.records {
		if strconv.FormatInt(rec.ID, 10) == id {
			r.records = slices.Delete(r.records, i, i+1)
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (r *mockRepo) Login(ctx context.Context, opt repository.CredentialsOptions) error {
	if r.loginErr != nil {
		return r.loginErr
	}
	r.loggedIn = opt.Username
	return nil
}

func (r *mockRepo) Signup(ctx context.Context, opt repository.CredentialsOptions) error {
	r.signedUp = opt.Username
	return nil
}

func (r *mockRepo) Authenticated() bool { return r.loggedIn != "" }

type mockAssistant struct {
	candidates   []assistant.Candidate
	extractErr   error
	suggestions  []checklist.Suggestion
	checklistErr error
	answer       string
	askErr       error

	lastExtract   assistant.ExtractInput
	lastAsk       assistant.AskInput
	checklistCall int
}

func (m *mockAssistant) ExtractTasks(ctx context.Context, input assistant.ExtractInput) ([]assistant.Candidate, error) {
	m.lastExtract = input
	return m.candidates, m.extractErr
}

func (m *mockAssistant) GenerateChecklist(ctx context.Context, input assistant.ChecklistInput) ([]checklist.Suggestion, error) {
	m.checklistCall++
	return m.suggestions, m.checklistErr
}

func (m *mockAssistant) Ask(ctx context.Context, input assistant.AskInput) (string, error) {
	m.lastAsk = input
	return m.answer, m.askErr
}

type mockCalendar struct {
	last gcalendar.CreateEventRequest
	err  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/event?eid=1"}, nil
}

var errDB = errors.New("db error")

// fixedNow is Wednesday 15 May 2024, 10:00 in Dubai.
func fixedNow() time.Time {
	loc, _ := time.LoadLocation("Asia/Dubai")
	return time.Date(2024, 5, 15, 10, 0, 0, 0, loc)
}

func newUseCase(repo *mockRepo, ai *mockAssistant, cal usecase.Calendar) task.UseCase {
	parser, err := datemath.NewParser("Asia/Dubai")
	if err != nil {
		panic(err)
	}
	return usecase.New(&mockLogger{}, repo, ai, cal, parser, usecase.Config{
		MaxDocumentBytes: 1024,
		Now:              fixedNow,
	})
}

func pending(title, dueDate string) task.Task {
	return task.Task{
		Title:      title,
		DueDate:    dueDate,
		Category:   task.CategoryOther,
		Priority:   task.PriorityMedium,
		Recurrence: task.RecurrenceNone,
		Status:     task.StatusPending,
		Checklist:  []task.ChecklistItem{},
		Documents:  []task.Document{},
	}
}
