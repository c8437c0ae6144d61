package assistant

import (
	"life-admin/internal/task"
	"life-admin/pkg/gemini"
)

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// extractSchema asks for {"tasks": [...]}.
var extractSchema = &gemini.Schema{
	Type: gemini.TypeObject,
	Properties: map[string]*gemini.Schema{
		"tasks": {
			Type: gemini.TypeArray,
			Items: &gemini.Schema{
				Type: gemini.TypeObject,
				Properties: map[string]*gemini.Schema{
					"title":       {Type: gemini.TypeString, Description: "Short title (e.g., 'Renew Ejari')"},
					"description": {Type: gemini.TypeString, Description: "Brief details extracted from text"},
					"dueDate":     {Type: gemini.TypeString, Description: "ISO 8601 date (YYYY-MM-DD)."},
					"dueTime":     {Type: gemini.TypeString, Description: "24-hour format time (HH:mm)."},
					"category":    {Type: gemini.TypeString, Enum: enumOf(task.Categories)},
					"priority":    {Type: gemini.TypeString, Enum: enumOf(task.Priorities)},
					"recurrence":  {Type: gemini.TypeString, Enum: enumOf(task.Recurrences)},
				},
				Required: []string{"title", "category", "dueDate", "priority"},
			},
		},
	},
	Required: []string{"tasks"},
}

// checklistSchema asks for {"items": [...]}.
var checklistSchema = &gemini.Schema{
	Type: gemini.TypeObject,
	Properties: map[string]*gemini.Schema{
		"items": {
			Type: gemini.TypeArray,
			Items: &gemini.Schema{
				Type: gemini.TypeObject,
				Properties: map[string]*gemini.Schema{
					"text": {Type: gemini.TypeString},
					"type": {Type: gemini.TypeString, Enum: []string{string(task.KindDocument), string(task.KindAction)}},
				},
				Required: []string{"text", "type"},
			},
		},
	},
	Required: []string{"items"},
}
