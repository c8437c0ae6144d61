// Package codec maps tasks onto the record store's flat
// title/description/is_completed/created_at shape. Everything the store has no
// column for travels as a JSON payload in the description field.
package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"life-admin/internal/model"
	"life-admin/internal/task"
	"life-admin/pkg/datemath"
)

// PayloadVersion is written into every payload this package encodes.
// Rows written before versioning carry no version field.
const PayloadVersion = 1

// payload is the JSON document stored in Record.Description.
type payload struct {
	Version         int                  `json:"version"`
	Checklist       []task.ChecklistItem `json:"checklist"`
	Priority        task.Priority        `json:"priority"`
	Category        task.Category        `json:"category"`
	DueDate         string               `json:"dueDate"`
	DueTime         string               `json:"dueTime,omitempty"`
	Recurrence      task.Recurrence      `json:"recurrence,omitempty"`
	DescriptionText string               `json:"descriptionText,omitempty"`
	Documents       []task.Document      `json:"documents,omitempty"`
}

func defaultPayload() payload {
	return payload{
		Checklist:  []task.ChecklistItem{},
		Priority:   task.PriorityMedium,
		Category:   task.CategoryOther,
		Recurrence: task.RecurrenceNone,
		Documents:  []task.Document{},
	}
}

// Encode converts a task into the body sent on create or update.
// The id is assigned by the store and never sent.
func Encode(t task.Task) model.RecordInput {
	p := payload{
		Version:         PayloadVersion,
		Checklist:       t.Checklist,
		Priority:        t.Priority,
		Category:        t.Category,
		DueDate:         t.DueDate,
		DueTime:         t.DueTime,
		Recurrence:      t.Recurrence,
		DescriptionText: t.Description,
		Documents:       t.Documents,
	}
	if p.Checklist == nil {
		p.Checklist = []task.ChecklistItem{}
	}

	// Marshal cannot fail: every field is a string, bool, int or slice of those.
	b, _ := json.Marshal(p)

	return model.RecordInput{
		Title:       t.Title,
		Description: string(b),
		IsCompleted: model.Flag(t.Status == task.StatusCompleted),
	}
}

// Decode converts a stored record into a task. It never fails: a description
// that is not a JSON object is treated as a plain-text note from before the
// payload existed, and the due date falls back to the creation date.
func Decode(rec model.Record) task.Task {
	p := defaultPayload()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Description), &fields); err != nil || fields == nil {
		p.DescriptionText = rec.Description
	} else {
		merge(fields, &p)
	}

	if p.DueDate == "" {
		p.DueDate = createdDate(rec.CreatedAt)
	}

	status := task.StatusPending
	if rec.IsCompleted {
		status = task.StatusCompleted
	}

	id := strconv.FormatInt(rec.ID, 10)
	return task.Task{
		ID:          id,
		Title:       rec.Title,
		Description: p.DescriptionText,
		DueDate:     p.DueDate,
		DueTime:     p.DueTime,
		Category:    p.Category,
		Priority:    p.Priority,
		Recurrence:  p.Recurrence,
		Status:      status,
		Checklist:   uniqueIDs(id, p.Checklist),
		Documents:   p.Documents,
	}
}

// DecodeAll decodes every record, preserving order.
func DecodeAll(recs []model.Record) []task.Task {
	tasks := make([]task.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, Decode(rec))
	}
	return tasks
}

// merge overlays each present field on p. A field whose JSON type does not
// match keeps its default; it does not discard the rest of the payload.
func merge(fields map[string]json.RawMessage, p *payload) {
	field(fields, "version", &p.Version)
	field(fields, "priority", &p.Priority)
	field(fields, "category", &p.Category)
	field(fields, "dueDate", &p.DueDate)
	field(fields, "dueTime", &p.DueTime)
	field(fields, "recurrence", &p.Recurrence)
	field(fields, "descriptionText", &p.DescriptionText)

	if raw, ok := fields["checklist"]; ok {
		p.Checklist = items[task.ChecklistItem](raw)
	}
	if raw, ok := fields["documents"]; ok {
		p.Documents = items[task.Document](raw)
	}

	if p.Recurrence == "" {
		p.Recurrence = task.RecurrenceNone
	}
}

func field[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// items decodes a JSON array element by element, skipping malformed entries.
func items[T any](raw json.RawMessage) []T {
	out := []T{}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// uniqueIDs replaces empty or repeated checklist ids with "<taskID>-<n>",
// n being the item's 1-based position. The result depends only on the stored
// payload, so every decode of the same record yields the same ids.
func uniqueIDs(taskID string, list []task.ChecklistItem) []task.ChecklistItem {
	taken := make(map[string]struct{}, len(list))
	for _, it := range list {
		if it.ID != "" {
			taken[it.ID] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(list))
	for i := range list {
		if _, dup := seen[list[i].ID]; list[i].ID == "" || dup {
			id := fmt.Sprintf("%s-%d", taskID, i+1)
			for suffix := 2; ; suffix++ {
				if _, ok := taken[id]; !ok {
					break
				}
				id = fmt.Sprintf("%s-%d-%d", taskID, i+1, suffix)
			}
			list[i].ID = id
			taken[id] = struct{}{}
		}
		seen[list[i].ID] = struct{}{}
	}
	return list
}

var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// createdDate returns the UTC calendar date of a creation timestamp.
// Timestamps without an offset are read as UTC.
func createdDate(createdAt string) string {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.UTC().Format(datemath.DateLayout)
		}
	}
	if len(createdAt) >= len(datemath.DateLayout) && datemath.ValidDate(createdAt[:len(datemath.DateLayout)]) {
		return createdAt[:len(datemath.DateLayout)]
	}
	return ""
}
