package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"life-admin/internal/task"
)

// AttachDocument stores a file inline on the task as a base64 data URL.
func (uc *implUseCase) AttachDocument(ctx context.Context, input task.AttachDocumentInput) (task.Task, error) {
	if len(input.Data) == 0 {
		return task.Task{}, task.ErrEmptyInput
	}
	if len(input.Data) > uc.maxDocumentBytes {
		return task.Task{}, fmt.Errorf("%w: %d bytes exceeds %d", task.ErrDocumentTooLarge, len(input.Data), uc.maxDocumentBytes)
	}

	t, err := uc.lookup(ctx, input.TaskID)
	if err != nil {
		return task.Task{}, err
	}

	detected := mimetype.Detect(input.Data)
	mediaType, _, _ := strings.Cut(detected.String(), ";")

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultDocumentName + detected.Extension()
	}

	t.Documents = append(t.Documents, task.Document{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    mediaType,
		DataURL: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(input.Data),
	})

	uc.l.Infof(ctx, "AttachDocument: task=%s name=%q type=%s bytes=%d", t.ID, name, mediaType, len(input.Data))
	return uc.save(ctx, t)
}

func (uc *implUseCase) RemoveDocument(ctx context.Context, taskID, documentID string) (task.Task, error) {
	t, err := uc.lookup(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}

	kept := make([]task.Document, 0, len(t.Documents))
	for _, d := range t.Documents {
		if d.ID != documentID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(t.Documents) {
		return task.Task{}, task.ErrDocumentNotFound
	}

	t.Documents = kept
	return uc.save(ctx, t)
}

// checkDocuments applies the attachment rules to documents arriving in a full
// update. Documents already stored unchanged pass as they are; any other one
// must be a base64 data URL within the size cap.
func (uc *implUseCase) checkDocuments(stored, docs []task.Document) error {
	known := make(map[string]string, len(stored))
	for _, d := range stored {
		known[d.ID] = d.DataURL
	}

	for _, d := range docs {
		if dataURL, ok := known[d.ID]; ok && dataURL == d.DataURL {
			continue
		}
		size, err := dataURLSize(d.DataURL)
		if err != nil {
			return fmt.Errorf("%w: document %q: %v", task.ErrInvalidTask, d.Name, err)
		}
		if size > uc.maxDocumentBytes {
			return fmt.Errorf("%w: document %q has %d bytes, limit %d", task.ErrDocumentTooLarge, d.Name, size, uc.maxDocumentBytes)
		}
	}
	return nil
}

// dataURLSize returns the decoded length of a "data:<type>;base64,<data>" URL.
func dataURLSize(dataURL string) (int, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return 0, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return 0, fmt.Errorf("data URL is not base64")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, fmt.Errorf("invalid base64: %w", err)
	}
	return len(raw), nil
}
