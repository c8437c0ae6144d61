package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"life-admin/internal/assistant"
	"life-admin/internal/checklist"
	"life-admin/internal/task"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	done := pending("Filed taxes", "2024-05-10")
	done.Status = task.StatusCompleted
	repo := newMockRepo(
		pending("Renew Ejari", "2024-05-15"),
		pending("Pay DEWA", "2024-05-14"),
		pending("Visa medical", "2024-05-22"),
		done,
	)
	uc := newUseCase(repo, &mockAssistant{}, nil)

	tests := []struct {
		tab       task.Tab
		wantTitle []string
	}{
		{tab: "", wantTitle: []string{"Renew Ejari"}},
		{tab: task.TabToday, wantTitle: []string{"Renew Ejari"}},
		{tab: task.TabFuture, wantTitle: []string{"Visa medical"}},
		{tab: task.TabPast, wantTitle: []string{"Pay DEWA", "Filed taxes"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			out, err := uc.Dashboard(ctx, task.DashboardInput{Tab: tt.tab})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got []string
			for _, it := range out.Items {
				got = append(got, it.Task.Title)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantTitle, ",") {
				t.Errorf("items = %v, want %v", got, tt.wantTitle)
			}
			if out.Counts != (task.Counts{Pending: 3, Overdue: 1, ThisWeek: 2}) {
				t.Errorf("unexpected counts: %+v", out.Counts)
			}
			if out.Today != "2024-05-15" || out.Greeting != "Good morning" {
				t.Errorf("unexpected header: today=%s greeting=%s", out.Today, out.Greeting)
			}
		})
	}

	t.Run("invalid tab", func(t *testing.T) {
		if _, err := uc.Dashboard(ctx, task.DashboardInput{Tab: "someday"}); !errors.Is(err, task.ErrInvalidTab) {
			t.Errorf("expected ErrInvalidTab, got %v", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		failing := newUseCase(&mockRepo{listErr: errDB}, &mockAssistant{}, nil)
		if _, err := failing.Dashboard(ctx, task.DashboardInput{}); !errors.Is(err, errDB) {
			t.Errorf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("session expired", func(t *testing.T) {
		expired := newUseCase(&mockRepo{listErr: task.ErrUnauthorized}, &mockAssistant{}, nil)
		if _, err := expired.Dashboard(ctx, task.DashboardInput{}); !errors.Is(err, task.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("relative date and AI checklist", func(t *testing.T) {
		repo := newMockRepo()
		ai := &mockAssistant{suggestions: []checklist.Suggestion{{Text: "Passport copy", Kind: task.KindDocument}}}
		uc := newUseCase(repo, ai, nil)

		got, err := uc.Create(ctx, task.CreateInput{Title: " Renew visa ", DueDate: "tomorrow", DueTime: "09:00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "1" || got.Title != "Renew visa" || got.DueDate != "2024-05-16" || got.DueTime != "09:00" {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.Category != task.CategoryOther || got.Priority != task.PriorityMedium || got.Status != task.StatusPending {
			t.Errorf("expected defaults, got %+v", got)
		}
		if len(got.Checklist) != 1 || got.Checklist[0].Text != "Passport copy" || got.Checklist[0].ID == "" {
			t.Errorf("unexpected checklist: %+v", got.Checklist)
		}
	})

	t.Run("markdown checklist wins", func(t *testing.T) {
		ai := &mockAssistant{}
		uc := newUseCase(newMockRepo(), ai, nil)

		got, err := uc.Create(ctx, task.CreateInput{
			Title:         "Move out",
			DueDate:       "2024-06-01",
			ChecklistText: "- [ ] Book movers\n- [x] Give notice",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ai.checklistCall != 0 {
			t.Errorf("expected no assistant call")
		}
		if len(got.Checklist) != 2 || !got.Checklist[1].IsCompleted {
			t.Errorf("unexpected checklist: %+v", got.Checklist)
		}
	})

	t.Run("AI failure is not fatal", func(t *testing.T) {
		uc := newUseCase(newMockRepo(), &mockAssistant{checklistErr: task.ErrContractViolation}, nil)
		got, err := uc.Create(ctx, task.CreateInput{Title: "Buy milk", DueDate: "2024-05-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Checklist) != 0 {
			t.Errorf("expected empty checklist, got %+v", got.Checklist)
		}
	})

	invalid := []struct {
		name  string
		input task.CreateInput
	}{
		{name: "missing title", input: task.CreateInput{DueDate: "2024-05-15"}},
		{name: "missing date", input: task.CreateInput{Title: "A"}},
		{name: "bad date", input: task.CreateInput{Title: "A", DueDate: "someday"}},
		{name: "bad time", input: task.CreateInput{Title: "A", DueDate: "2024-05-15", DueTime: "9am"}},
		{name: "bad category", input: task.CreateInput{Title: "A", DueDate: "2024-05-15", Category: "Errands"}},
		{name: "bad priority", input: task.CreateInput{Title: "A", DueDate: "2024-05-15", Priority: "urgent"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			_, err := newUseCase(repo, &mockAssistant{}, nil).Create(ctx, tt.input)
			if !errors.Is(err, task.ErrInvalidTask) {
				t.Errorf("expected ErrInvalidTask, got %v", err)
			}
			if repo.creates != 0 {
				t.Errorf("expected no write")
			}
		})
	}
}

func TestCapture(t *testing.T) {
	ctx := context.Background()

	t.Run("creates every candidate with one refetch", func(t *testing.T) {
		repo := newMockRepo()
		ai := &mockAssistant{
			candidates: []assistant.Candidate{
				{Title: "Renew Ejari", DueDate: "2024-06-01", Category: task.CategoryHome, Priority: task.PriorityHigh, Recurrence: task.RecurrenceYearly},
				{Title: "Pay DEWA", DueDate: "2024-05-20", DueTime: "18:00", Category: task.CategoryFinance, Priority: task.PriorityMedium, Recurrence: task.RecurrenceMonthly},
			},
			suggestions: []checklist.Suggestion{{Text: "Open app", Kind: task.KindAction}},
		}
		uc := newUseCase(repo, ai, nil)

		out, err := uc.Capture(ctx, task.CaptureInput{Text: "renew ejari in june, pay dewa monday 6pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 2 || len(out.Tasks) != 2 {
			t.Fatalf("unexpected output: %+v", out)
		}
		if repo.listCalls != 1 {
			t.Errorf("expected a single refetch, got %d", repo.listCalls)
		}
		if ai.lastExtract.Today != "2024-05-15" {
			t.Errorf("expected local date in extraction input, got %q", ai.lastExtract.Today)
		}
		second := out.Tasks[1]
		if second.Title != "Pay DEWA" || second.DueTime != "18:00" || second.Recurrence != task.RecurrenceMonthly || second.Status != task.StatusPending {
			t.Errorf("unexpected task: %+v", second)
		}
		if len(second.Checklist) != 1 || second.Documents == nil {
			t.Errorf("expected checklist and empty documents: %+v", second)
		}
	})

	t.Run("contract violation aborts before writes", func(t *testing.T) {
		repo := newMockRepo()
		uc := newUseCase(repo, &mockAssistant{extractErr: task.ErrContractViolation}, nil)

		_, err := uc.Capture(ctx, task.CaptureInput{Text: "something"})
		if !errors.Is(err, task.ErrContractViolation) {
			t.Errorf("expected ErrContractViolation, got %v", err)
		}
		if repo.creates != 0 {
			t.Errorf("expected no writes, got %d", repo.creates)
		}
	})

	t.Run("nothing extracted", func(t *testing.T) {
		_, err := newUseCase(newMockRepo(), &mockAssistant{}, nil).Capture(ctx, task.CaptureInput{Text: "hello"})
		if !errors.Is(err, task.ErrNoTasksParsed) {
			t.Errorf("expected ErrNoTasksParsed, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := newUseCase(newMockRepo(), &mockAssistant{}, nil).Capture(ctx, task.CaptureInput{Text: "  "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ai := &mockAssistant{candidates: []assistant.Candidate{{Title: "A", DueDate: "2024-05-20", Category: task.CategoryOther, Priority: task.PriorityLow}}}
		_, err := newUseCase(&mockRepo{createErr: errDB}, ai, nil).Capture(ctx, task.CaptureInput{Text: "a"})
		if !errors.Is(err, errDB) {
			t.Errorf("expected db error, got %v", err)
		}
	})

	t.Run("audio mime detection", func(t *testing.T) {
		ai := &mockAssistant{candidates: []assistant.Candidate{{Title: "A", DueDate: "2024-05-20", Category: task.CategoryOther, Priority: task.PriorityLow}}}
		uc := newUseCase(newMockRepo(), ai, nil)

		wav := append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 32)...)
		if _, err := uc.CaptureAudio(ctx, task.CaptureAudioInput{Audio: wav}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ai.lastExtract.MimeType != "audio/wav" || len(ai.lastExtract.Audio) == 0 {
			t.Errorf("unexpected extraction input: mime=%q", ai.lastExtract.MimeType)
		}

		if _, err := uc.CaptureAudio(ctx, task.CaptureAudioInput{}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()

	overdue := pending("Pay DEWA", "2024-05-14")
	repo := newMockRepo(overdue)
	uc := newUseCase(repo, &mockAssistant{}, nil)

	before, err := uc.Dashboard(ctx, task.DashboardInput{Tab: task.TabPast})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.Counts.Overdue != 1 {
		t.Fatalf("expected one overdue task, got %+v", before.Counts)
	}

	got, err := uc.ToggleStatus(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != task.StatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}

	after, err := uc.Dashboard(ctx, task.DashboardInput{Tab: task.TabPast})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Counts.Overdue != 0 || after.Counts.Pending != 0 {
		t.Errorf("unexpected counts after toggle: %+v", after.Counts)
	}

	got, err = uc.ToggleStatus(ctx, "1")
	if err != nil || got.Status != task.StatusPending {
		t.Fatalf("expected pending again, got %s err=%v", got.Status, err)
	}

	t.Run("failed write leaves snapshot unchanged", func(t *testing.T) {
		repo.updateErr = errDB
		defer func() { repo.updateErr = nil }()

		if _, err := uc.ToggleStatus(ctx, "1"); !errors.Is(err, errDB) {
			t.Fatalf("expected db error, got %v", err)
		}
		current, err := uc.Get(ctx, "1")
		if err != nil || current.Status != task.StatusPending {
			t.Errorf("expected unchanged pending task, got %+v err=%v", current, err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if _, err := uc.ToggleStatus(ctx, "99"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(pending("Renew Ejari", "2024-05-15"))
	uc := newUseCase(repo, &mockAssistant{}, nil)

	current, err := uc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current.Title = "Renew Ejari contract"
	current.Description = "Bring title deed"
	current.DueTime = "11:30"
	updated, err := uc.Update(ctx, current)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renew Ejari contract" || updated.Description != "Bring title deed" || updated.DueTime != "11:30" {
		t.Errorf("unexpected update: %+v", updated)
	}

	bad := updated
	bad.DueDate = "15/05/2024"
	if _, err := uc.Update(ctx, bad); !errors.Is(err, task.ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}

	if err := uc.Delete(ctx, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Get(ctx, "1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := uc.Delete(ctx, "1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestChecklistOperations(t *testing.T) {
	ctx := context.Background()

	withSteps := pending("Renew visa", "2024-05-20")
	withSteps.Checklist = []task.ChecklistItem{
		{ID: "a", Text: "Passport copy", Kind: task.KindDocument},
		{ID: "b", Text: "Medical test", Kind: task.KindAction},
	}
	ai := &mockAssistant{}
	uc := newUseCase(newMockRepo(withSteps), ai, nil)

	got, err := uc.ToggleChecklistItem(ctx, "1", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Checklist[0].IsCompleted || !got.Checklist[1].IsCompleted {
		t.Errorf("unexpected checklist: %+v", got.Checklist)
	}

	if _, err := uc.ToggleChecklistItem(ctx, "1", "zzz"); !errors.Is(err, task.ErrChecklistItemNotFound) {
		t.Errorf("expected ErrChecklistItemNotFound, got %v", err)
	}

	ai.checklistErr = task.ErrContractViolation
	if _, err := uc.RegenerateChecklist(ctx, "1"); !errors.Is(err, task.ErrContractViolation) {
		t.Errorf("expected assistant error to surface, got %v", err)
	}

	ai.checklistErr = nil
	ai.suggestions = []checklist.Suggestion{{Text: "Book appointment", Kind: task.KindAction}}
	got, err = uc.RegenerateChecklist(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Checklist) != 1 || got.Checklist[0].Text != "Book appointment" || got.Checklist[0].IsCompleted {
		t.Errorf("unexpected regenerated checklist: %+v", got.Checklist)
	}
}

func TestDocuments(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(newMockRepo(pending("Renew Ejari", "2024-05-20")), &mockAssistant{}, nil)

	pdf := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	got, err := uc.AttachDocument(ctx, task.AttachDocumentInput{TaskID: "1", Name: "contract.pdf", Data: pdf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Documents) != 1 {
		t.Fatalf("expected one document, got %+v", got.Documents)
	}
	doc := got.Documents[0]
	if doc.Name != "contract.pdf" || doc.Type != "application/pdf" || !strings.HasPrefix(doc.DataURL, "data:application/pdf;base64,") {
		t.Errorf("unexpected document: %+v", doc)
	}

	if _, err := uc.AttachDocument(ctx, task.AttachDocumentInput{TaskID: "1", Data: make([]byte, 2048)}); !errors.Is(err, task.ErrDocumentTooLarge) {
		t.Errorf("expected ErrDocumentTooLarge, got %v", err)
	}
	if _, err := uc.RemoveDocument(ctx, "1", "missing"); !errors.Is(err, task.ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}

	got, err = uc.RemoveDocument(ctx, "1", doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Documents) != 0 {
		t.Errorf("expected no documents, got %+v", got.Documents)
	}
}

func TestUpdateDocuments(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(newMockRepo(pending("Renew Ejari", "2024-05-20")), &mockAssistant{}, nil)

	withDoc, err := uc.AttachDocument(ctx, task.AttachDocumentInput{TaskID: "1", Name: "deed.pdf", Data: []byte("%PDF-1.4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withDoc.Description = "kept attachments"
	if _, err := uc.Update(ctx, withDoc); err != nil {
		t.Errorf("update with unchanged documents: %v", err)
	}

	tests := []struct {
		name    string
		dataURL string
		wantErr error
	}{
		{name: "within limit", dataURL: "data:text/plain;base64," + base64.StdEncoding.EncodeToString(make([]byte, 1024))},
		{name: "over limit", dataURL: "data:text/plain;base64," + base64.StdEncoding.EncodeToString(make([]byte, 1025)), wantErr: task.ErrDocumentTooLarge},
		{name: "not a data URL", dataURL: "https://example.com/deed.pdf", wantErr: task.ErrInvalidTask},
		{name: "not base64", dataURL: "data:text/plain,hello", wantErr: task.ErrInvalidTask},
		{name: "broken base64", dataURL: "data:text/plain;base64,@@@", wantErr: task.ErrInvalidTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, err := uc.Get(ctx, "1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			current.Documents = append(current.Documents, task.Document{ID: "new", Name: "extra.txt", Type: "text/plain", DataURL: tt.dataURL})

			_, err = uc.Update(ctx, current)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				current.Documents = current.Documents[:len(current.Documents)-1]
				if _, err := uc.Update(ctx, current); err != nil {
					t.Fatalf("restore: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	current, _ := uc.Get(ctx, "1")
	current.Documents[0].DataURL = "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(make([]byte, 2048))
	if _, err := uc.Update(ctx, current); !errors.Is(err, task.ErrDocumentTooLarge) {
		t.Errorf("replacing a stored document must be checked, got %v", err)
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	timed := pending("Pay DEWA", "2024-05-20")
	timed.DueTime = "18:00"
	timed.Recurrence = task.RecurrenceMonthly
	timed.Checklist = []task.ChecklistItem{{ID: "a", Text: "Open app", Kind: task.KindAction}}
	allDay := pending("Renew Ejari", "2024-06-01")

	cal := &mockCalendar{}
	uc := newUseCase(newMockRepo(timed, allDay), &mockAssistant{}, cal)

	link, err := uc.CalendarLink(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(link, "dates=20240520T180000/20240520T180000") {
		t.Errorf("unexpected link: %s", link)
	}

	ics, err := uc.ICS(ctx, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ics.Filename != "Renew_Ejari.ics" || !strings.Contains(ics.Content, "DTSTART;VALUE=DATE:20240601") {
		t.Errorf("unexpected ics: %+v", ics)
	}

	out, err := uc.PushToCalendar(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EventID != "evt-1" {
		t.Errorf("unexpected output: %+v", out)
	}
	if cal.last.AllDay || cal.last.EndTime.Sub(cal.last.StartTime).Minutes() != 60 || cal.last.Timezone != "Asia/Dubai" {
		t.Errorf("unexpected timed request: %+v", cal.last)
	}
	if len(cal.last.Recurrence) != 1 || cal.last.Recurrence[0] != "RRULE:FREQ=MONTHLY" {
		t.Errorf("unexpected recurrence: %v", cal.last.Recurrence)
	}
	if !strings.Contains(cal.last.Description, "- Open app") {
		t.Errorf("expected checklist in description: %q", cal.last.Description)
	}

	if _, err := uc.PushToCalendar(ctx, "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cal.last.AllDay || cal.last.StartTime.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("unexpected all-day request: %+v", cal.last)
	}

	noCal := newUseCase(newMockRepo(timed), &mockAssistant{}, nil)
	if _, err := noCal.PushToCalendar(ctx, "1"); !errors.Is(err, task.ErrCalendarNotConfigured) {
		t.Errorf("expected ErrCalendarNotConfigured, got %v", err)
	}
}

func TestAsk(t *testing.T) {
	ctx := context.Background()
	ai := &mockAssistant{answer: "Ejari is due on 1 June."}
	uc := newUseCase(newMockRepo(pending("Renew Ejari", "2024-06-01")), ai, nil)

	out, err := uc.Ask(ctx, task.AskInput{Query: "When is Ejari due?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Answer != "Ejari is due on 1 June." || len(ai.lastAsk.Tasks) != 1 {
		t.Errorf("unexpected answer %q with %d tasks", out.Answer, len(ai.lastAsk.Tasks))
	}

	if _, err := uc.Ask(ctx, task.AskInput{}); !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	uc := newUseCase(repo, &mockAssistant{}, nil)

	if err := uc.Signup(ctx, task.Credentials{Username: " me@example.com ", Password: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.signedUp != "me@example.com" || repo.loggedIn != "me@example.com" {
		t.Errorf("expected signup then login, got signedUp=%q loggedIn=%q", repo.signedUp, repo.loggedIn)
	}

	if err := uc.Login(ctx, task.Credentials{Username: "me@example.com"}); !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	repo.loginErr = task.ErrUnauthorized
	if err := uc.Login(ctx, task.Credentials{Username: "me@example.com", Password: "bad"}); !errors.Is(err, task.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestFailedLoginDropsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(pending("Secret", "2024-05-15"))
	uc := newUseCase(repo, &mockAssistant{answer: "none"}, nil)

	tasks, err := uc.List(ctx)
	if err != nil || len(tasks) != 1 {
		t.Fatalf("List: tasks=%d err=%v", len(tasks), err)
	}
	id := tasks[0].ID

	repo.loginErr = task.ErrUnauthorized
	repo.listErr = task.ErrUnauthorized
	if err := uc.Login(ctx, task.Credentials{Username: "other@example.com", Password: "bad"}); !errors.Is(err, task.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if got, err := uc.Get(ctx, id); !errors.Is(err, task.ErrUnauthorized) {
		t.Errorf("Get after failed login: task=%q err=%v", got.Title, err)
	}
	if _, err := uc.ToggleStatus(ctx, id); !errors.Is(err, task.ErrUnauthorized) {
		t.Errorf("ToggleStatus after failed login: err=%v", err)
	}
	if _, err := uc.Ask(ctx, task.AskInput{Query: "what is due?"}); !errors.Is(err, task.ErrUnauthorized) {
		t.Errorf("Ask after failed login: err=%v", err)
	}
}
