package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"life-admin/internal/assistant"
	"life-admin/internal/task"
	"life-admin/internal/task/codec"
)

// Capture extracts tasks from free-form text and stores each of them.
func (uc *implUseCase) Capture(ctx context.Context, input task.CaptureInput) (task.CaptureOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CaptureOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Capture: input_length=%d", len(text))
	return uc.capture(ctx, assistant.ExtractInput{Text: text, Today: uc.classifier.Today()})
}

// CaptureAudio extracts tasks from a voice note. The MIME type is sniffed
// from the content when the caller does not provide one.
func (uc *implUseCase) CaptureAudio(ctx context.Context, input task.CaptureAudioInput) (task.CaptureOutput, error) {
	if len(input.Audio) == 0 {
		return task.CaptureOutput{}, task.ErrEmptyInput
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = mimetype.Detect(input.Audio).String()
	}

	uc.l.Infof(ctx, "CaptureAudio: bytes=%d mime=%s", len(input.Audio), mimeType)
	return uc.capture(ctx, assistant.ExtractInput{Audio: input.Audio, MimeType: mimeType, Today: uc.classifier.Today()})
}

// capture runs extraction, builds one task per candidate and writes them all
// before a single refetch. A contract violation aborts before any write.
func (uc *implUseCase) capture(ctx context.Context, input assistant.ExtractInput) (task.CaptureOutput, error) {
	candidates, err := uc.assistant.ExtractTasks(ctx, input)
	if err != nil {
		return task.CaptureOutput{}, fmt.Errorf("failed to extract tasks: %w", err)
	}
	if len(candidates) == 0 {
		return task.CaptureOutput{}, task.ErrNoTasksParsed
	}

	uc.l.Infof(ctx, "capture: assistant extracted %d tasks", len(candidates))

	createdIDs := make([]string, 0, len(candidates))
	var lastErr error
	for _, c := range candidates {
		t := uc.taskFromCandidate(ctx, c)

		rec, err := uc.repo.CreateRecord(ctx, codec.Encode(t))
		if err != nil {
			if errors.Is(err, task.ErrUnauthorized) {
				uc.snap.reset()
				return task.CaptureOutput{}, err
			}
			uc.l.Errorf(ctx, "capture: failed to create task %q: %v", t.Title, err)
			lastErr = err
			continue
		}
		createdIDs = append(createdIDs, strconv.FormatInt(rec.ID, 10))
	}

	if len(createdIDs) == 0 {
		return task.CaptureOutput{}, fmt.Errorf("failed to create tasks: %w", lastErr)
	}

	tasks, err := uc.refetch(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "capture: refetch after write failed: %v", err)
	}

	created := make([]task.Task, 0, len(createdIDs))
	for _, id := range createdIDs {
		for _, t := range tasks {
			if t.ID == id {
				created = append(created, t)
				break
			}
		}
	}

	return task.CaptureOutput{
		Tasks:     created,
		TaskCount: len(createdIDs),
	}, nil
}

func (uc *implUseCase) taskFromCandidate(ctx context.Context, c assistant.Candidate) task.Task {
	t := task.Task{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		DueTime:     c.DueTime,
		Category:    c.Category,
		Priority:    c.Priority,
		Recurrence:  c.Recurrence,
		Status:      task.StatusPending,
		Documents:   []task.Document{},
	}
	t.Checklist = uc.suggestChecklist(ctx, t)
	return t
}
