package checklist

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"life-admin/internal/task"
)

const (
	// Regex pattern: captures checkbox state and text, at any indent
	// Example: "  - [x] Task name" → groups: ["x", "Task name"]
	CheckboxPattern = `(?m)^[ \t]*[-*] \[([ xX])\] (.+)$`
)

type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// FromMarkdown builds checklist items from markdown checkboxes
	FromMarkdown(content string) []task.ChecklistItem

	// FromSuggestions builds unchecked items with fresh ids
	FromSuggestions(suggestions []Suggestion) []task.ChecklistItem

	// GetStats calculates checklist statistics
	GetStats(items []task.ChecklistItem) ChecklistStats

	// Toggle flips one item's completion and returns the updated copy
	Toggle(items []task.ChecklistItem, itemID string) ([]task.ChecklistItem, error)

	// Render lists item texts as "- text" lines
	Render(items []task.ChecklistItem) string
}

type service struct {
	pattern *regexp.Regexp
	newID   func() string
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
		newID:   uuid.NewString,
	}
}

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

// sanitizeContent removes code blocks before checkbox parsing
// Prevents matching fake checkboxes in code examples
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for _, match := range matches {
		if len(match) != 3 {
			continue
		}

		checkboxes = append(checkboxes, Checkbox{
			Checked: strings.ToLower(match[1]) == "x",
			Text:    strings.TrimSpace(match[2]),
		})
	}

	return checkboxes
}

// FromMarkdown converts markdown checkboxes into action items.
func (s *service) FromMarkdown(content string) []task.ChecklistItem {
	checkboxes := s.ParseCheckboxes(content)
	items := make([]task.ChecklistItem, 0, len(checkboxes))
	for _, cb := range checkboxes {
		if cb.Text == "" {
			continue
		}
		items = append(items, task.ChecklistItem{
			ID:          s.newID(),
			Text:        cb.Text,
			IsCompleted: cb.Checked,
			Kind:        task.KindAction,
		})
	}
	return items
}

// FromSuggestions turns assistant suggestions into open checklist items.
func (s *service) FromSuggestions(suggestions []Suggestion) []task.ChecklistItem {
	items := make([]task.ChecklistItem, 0, len(suggestions))
	for _, sg := range suggestions {
		items = append(items, task.ChecklistItem{
			ID:   s.newID(),
			Text: sg.Text,
			Kind: sg.Kind,
		})
	}
	return items
}

// GetStats calculates checklist statistics
func (s *service) GetStats(items []task.ChecklistItem) ChecklistStats {
	total := len(items)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, it := range items {
		if it.IsCompleted {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// Toggle returns a copy of items with itemID's completion flipped.
func (s *service) Toggle(items []task.ChecklistItem, itemID string) ([]task.ChecklistItem, error) {
	out := make([]task.ChecklistItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID == itemID {
			out[i].IsCompleted = !out[i].IsCompleted
			return out, nil
		}
	}
	return nil, task.ErrChecklistItemNotFound
}

// Render lists item texts one per line.
func (s *service) Render(items []task.ChecklistItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it.Text)
	}
	return strings.Join(lines, "\n")
}
