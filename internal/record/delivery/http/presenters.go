package http

import (
	"time"

	"life-admin/internal/model"
	"life-admin/internal/record"
)

// --- Request DTOs ---

// listReq holds the optional GET /tasks query. Without parameters every row
// is returned, oldest first.
type listReq struct {
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	Order     string `form:"order" binding:"omitempty,oneof=created_at created_at_desc title"`
}

func (r listReq) toInput() record.ListInput {
	return record.ListInput{
		Completed: r.Completed,
		Limit:     r.Limit,
		Offset:    r.Offset,
		OrderBy:   r.Order,
	}
}

type createReq struct {
	Title       string     `json:"title" binding:"required,max=500"`
	Description string     `json:"description"`
	IsCompleted model.Flag `json:"is_completed"`
}

func (r createReq) toInput() record.CreateInput {
	return record.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: bool(r.IsCompleted),
	}
}

type updateReq struct {
	ID          int64      `json:"-"` // populated from URI param
	Title       string     `json:"title" binding:"required,max=500"`
	Description string     `json:"description"`
	IsCompleted model.Flag `json:"is_completed"`
}

func (r updateReq) toInput() record.UpdateInput {
	return record.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: bool(r.IsCompleted),
	}
}

// --- Response DTOs ---

// newRecordResp renders a row in the wire shape the task client decodes.
func newRecordResp(rec record.Record) model.Record {
	return model.Record{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		IsCompleted: model.Flag(rec.IsCompleted),
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newListResp(records []record.Record) []model.Record {
	out := make([]model.Record, len(records))
	for i, rec := range records {
		out[i] = newRecordResp(rec)
	}
	return out
}
