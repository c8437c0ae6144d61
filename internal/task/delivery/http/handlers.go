package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"life-admin/internal/task"
	"life-admin/pkg/response"
)

// Login godoc
// @Summary     Log in to the record store
// @Description Exchanges credentials for a record store session used by every other route.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/session/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Login(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, nil)
}

// Signup godoc
// @Summary     Register and log in
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/session/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Signup(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		h.abort(c, err)
		return
	}

	response.Created(c, nil)
}

// Dashboard godoc
// @Summary     Timeline dashboard
// @Description Returns the tasks of one timeline tab with counts over the whole list.
// @Tags        Tasks
// @Produce     json
// @Param       tab query string false "today (default), future or past"
// @Success     200 {object} dashboardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDashboardReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Dashboard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// List godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} []taskResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResps(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from manual input. dueDate accepts YYYY-MM-DD or relative forms such as "tomorrow".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.abort(c, err)
		return
	}

	response.Created(c, newTaskResp(output))
}

// Update godoc
// @Summary     Replace a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Full task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, nil)
}

// ToggleStatus godoc
// @Summary     Toggle pending/completed
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleStatus(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// ToggleChecklistItem godoc
// @Summary     Toggle a checklist item
// @Tags        Checklist
// @Param       id     path string true "Task ID"
// @Param       itemId path string true "Checklist item ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/checklist/{itemId}/toggle [POST]
func (h *handler) ToggleChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleChecklistItem(ctx, c.Param("id"), c.Param("itemId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleChecklistItem: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// RegenerateChecklist godoc
// @Summary     Replace the checklist with AI suggestions
// @Tags        Checklist
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     502 {object} response.Resp "AI response rejected"
// @Router      /api/v1/tasks/{id}/checklist [PUT]
func (h *handler) RegenerateChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RegenerateChecklist(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RegenerateChecklist: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// AttachDocument godoc
// @Summary     Attach a document
// @Tags        Documents
// @Accept      multipart/form-data
// @Param       id   path     string true "Task ID"
// @Param       file formData file   true "Document"
// @Success     200 {object} taskResp
// @Failure     413 {object} response.Resp "Document too large"
// @Router      /api/v1/tasks/{id}/documents [POST]
func (h *handler) AttachDocument(c *gin.Context) {
	ctx := c.Request.Context()

	name, _, data, err := h.readFormFile(c, formFieldFile, h.maxUploadBytes)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		response.ErrorWithStatus(c, http.StatusRequestEntityTooLarge, task.ErrDocumentTooLarge, nil)
		return
	}

	output, err := h.uc.AttachDocument(ctx, task.AttachDocumentInput{TaskID: c.Param("id"), Name: name, Data: data})
	if err != nil {
		h.l.Errorf(ctx, "uc.AttachDocument: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// RemoveDocument godoc
// @Summary     Remove a document
// @Tags        Documents
// @Param       id    path string true "Task ID"
// @Param       docId path string true "Document ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/documents/{docId} [DELETE]
func (h *handler) RemoveDocument(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RemoveDocument(ctx, c.Param("id"), c.Param("docId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveDocument: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// CalendarLink godoc
// @Summary     Google Calendar template link
// @Tags        Calendar
// @Param       id path string true "Task ID"
// @Success     200 {object} calendarLinkResp
// @Router      /api/v1/tasks/{id}/calendar-link [GET]
func (h *handler) CalendarLink(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.CalendarLink(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarLink: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, calendarLinkResp{URL: url})
}

// DownloadICS godoc
// @Summary     Download the task as an iCalendar file
// @Tags        Calendar
// @Produce     text/calendar
// @Param       id path string true "Task ID"
// @Success     200 {string} string "ICS file"
// @Router      /api/v1/tasks/{id}/ics [GET]
func (h *handler) DownloadICS(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ICS(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ICS: %v", err)
		h.abort(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.Content))
}

// PushToCalendar godoc
// @Summary     Create a Google Calendar event for the task
// @Tags        Calendar
// @Param       id path string true "Task ID"
// @Success     200 {object} calendarEventResp
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/tasks/{id}/calendar [POST]
func (h *handler) PushToCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PushToCalendar(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.PushToCalendar: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, calendarEventResp{EventID: output.EventID, HTMLLink: output.HTMLLink})
}

// Capture godoc
// @Summary     Capture tasks from free text
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body captureReq true "Free-form text"
// @Success     201 {object} captureResp
// @Failure     422 {object} response.Resp "No tasks found"
// @Failure     502 {object} response.Resp "AI response rejected"
// @Router      /api/v1/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCaptureReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Capture(ctx, task.CaptureInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		h.abort(c, err)
		return
	}

	response.Created(c, h.newCaptureResp(output))
}

// CaptureAudio godoc
// @Summary     Capture tasks from a voice note
// @Tags        Capture
// @Accept      multipart/form-data
// @Param       audio formData file true "Audio recording"
// @Success     201 {object} captureResp
// @Router      /api/v1/capture/audio [POST]
func (h *handler) CaptureAudio(c *gin.Context) {
	ctx := c.Request.Context()

	_, contentType, data, err := h.readFormFile(c, formFieldAudio, maxAudioBytes)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if len(data) > maxAudioBytes {
		response.ErrorWithStatus(c, http.StatusRequestEntityTooLarge, task.ErrDocumentTooLarge, nil)
		return
	}
	if contentType == "application/octet-stream" {
		contentType = ""
	}

	output, err := h.uc.CaptureAudio(ctx, task.CaptureAudioInput{Audio: data, MimeType: contentType})
	if err != nil {
		h.l.Errorf(ctx, "uc.CaptureAudio: %v", err)
		h.abort(c, err)
		return
	}

	response.Created(c, h.newCaptureResp(output))
}

// Ask godoc
// @Summary     Ask a question about your tasks
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Router      /api/v1/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ask(ctx, task.AskInput{Query: req.Query})
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, askResp{Answer: output.Answer})
}

func (h *handler) abort(c *gin.Context, err error) {
	status, mapped := h.mapError(err)
	if mapped == nil {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, mapped, nil)
}
