package http

import (
	"time"

	"life-admin/internal/task"
	"life-admin/pkg/datemath"
	"life-admin/pkg/response"
)

// --- Request DTOs ---

type credentialsReq struct {
	UserEmail string `json:"useremail" binding:"required"`
	Password  string `json:"password"  binding:"required"`
}

func (r credentialsReq) toInput() task.Credentials {
	return task.Credentials{Username: r.UserEmail, Password: r.Password}
}

// ---

type dashboardReq struct {
	Tab string `form:"tab" binding:"omitempty,oneof=today future past"`
}

func (r dashboardReq) toInput() task.DashboardInput {
	return task.DashboardInput{Tab: task.Tab(r.Tab)}
}

// ---

type createReq struct {
	Title         string `json:"title"         binding:"required,max=255"`
	Description   string `json:"description"   binding:"max=5000"`
	DueDate       string `json:"dueDate"       binding:"required"`
	DueTime       string `json:"dueTime"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	Recurrence    string `json:"recurrence"`
	ChecklistText string `json:"checklistText"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		DueDate:       r.DueDate,
		DueTime:       r.DueTime,
		Category:      task.Category(r.Category),
		Priority:      task.Priority(r.Priority),
		Recurrence:    task.Recurrence(r.Recurrence),
		ChecklistText: r.ChecklistText,
	}
}

// ---

type updateReq struct {
	ID          string               `json:"-"` // populated from URI param
	Title       string               `json:"title"       binding:"required,max=255"`
	Description string               `json:"description" binding:"max=5000"`
	DueDate     string               `json:"dueDate"     binding:"required"`
	DueTime     string               `json:"dueTime"`
	Category    string               `json:"category"    binding:"required"`
	Priority    string               `json:"priority"    binding:"required"`
	Recurrence  string               `json:"recurrence"`
	Status      string               `json:"status"      binding:"required,oneof=pending completed"`
	Checklist   []task.ChecklistItem `json:"checklist"`
	Documents   []task.Document      `json:"documents"`
}

func (r updateReq) toInput() task.Task {
	return task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Category:    task.Category(r.Category),
		Priority:    task.Priority(r.Priority),
		Recurrence:  task.Recurrence(r.Recurrence),
		Status:      task.Status(r.Status),
		Checklist:   r.Checklist,
		Documents:   r.Documents,
	}
}

// ---

type captureReq struct {
	Text string `json:"text" binding:"required"`
}

type askReq struct {
	Query string `json:"query" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	DueDate     string               `json:"dueDate"`
	DueTime     string               `json:"dueTime,omitempty"`
	Category    task.Category        `json:"category"`
	Priority    task.Priority        `json:"priority"`
	Recurrence  task.Recurrence      `json:"recurrence"`
	Status      task.Status          `json:"status"`
	Checklist   []task.ChecklistItem `json:"checklist"`
	Documents   []task.Document      `json:"documents"`
}

func newTaskResp(t task.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		DueTime:     t.DueTime,
		Category:    t.Category,
		Priority:    t.Priority,
		Recurrence:  t.Recurrence,
		Status:      t.Status,
		Checklist:   t.Checklist,
		Documents:   t.Documents,
	}
	if resp.Checklist == nil {
		resp.Checklist = []task.ChecklistItem{}
	}
	if resp.Documents == nil {
		resp.Documents = []task.Document{}
	}
	return resp
}

func newTaskResps(tasks []task.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type dashboardItemResp struct {
	Task       taskResp `json:"task"`
	DayOffset  *int     `json:"day_offset"`
	Late       bool     `json:"late"`
	StepsDone  int      `json:"steps_done"`
	StepsTotal int      `json:"steps_total"`
}

func newDashboardItemResps(items []task.DashboardItem) []dashboardItemResp {
	out := make([]dashboardItemResp, len(items))
	for i, it := range items {
		out[i] = dashboardItemResp{
			Task:       newTaskResp(it.Task),
			Late:       it.Late,
			StepsDone:  it.StepsDone,
			StepsTotal: it.StepsTotal,
		}
		if it.Dated {
			offset := it.DayOffset
			out[i].DayOffset = &offset
		}
	}
	return out
}

type dashboardResp struct {
	Greeting string              `json:"greeting"`
	Today    response.Date       `json:"today"`
	Tab      task.Tab            `json:"tab"`
	Items    []dashboardItemResp `json:"items"`
	Undated  []dashboardItemResp `json:"undated"`
	Counts   task.Counts         `json:"counts"`
}

func (h *handler) newDashboardResp(out task.DashboardOutput) dashboardResp {
	today, err := datemath.ParseDate(out.Today, time.UTC)
	if err != nil {
		today = time.Time{}
	}
	return dashboardResp{
		Greeting: out.Greeting,
		Today:    response.Date(today),
		Tab:      out.Tab,
		Items:    newDashboardItemResps(out.Items),
		Undated:  newDashboardItemResps(out.Undated),
		Counts:   out.Counts,
	}
}

type captureResp struct {
	Tasks     []taskResp `json:"tasks"`
	TaskCount int        `json:"task_count"`
}

func (h *handler) newCaptureResp(out task.CaptureOutput) captureResp {
	return captureResp{Tasks: newTaskResps(out.Tasks), TaskCount: out.TaskCount}
}

type calendarLinkResp struct {
	URL string `json:"url"`
}

type calendarEventResp struct {
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link"`
}

type askResp struct {
	Answer string `json:"answer"`
}
