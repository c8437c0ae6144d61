package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-admin/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the stored tasks of the authenticated user, oldest first unless order says otherwise.
// @Tags        Records
// @Produce     json
// @Security    BearerAuth
// @Param       completed query    bool   false "Filter by completion"
// @Param       limit     query    int    false "Page size"
// @Param       offset    query    int    false "Rows to skip"
// @Param       order     query    string false "created_at, created_at_desc or title"
// @Success     200 {array}  model.Record
// @Failure     400 {object} response.DetailResp "Bad Request"
// @Failure     401 {object} response.DetailResp "Not authenticated"
// @Failure     500 {object} response.DetailResp "Internal Server Error"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResp(records))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Records
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} model.Record
// @Failure     400 {object} response.DetailResp "Bad Request"
// @Failure     401 {object} response.DetailResp "Not authenticated"
// @Failure     404 {object} response.DetailResp "Not Found"
// @Router      /tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	rec, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecordResp(rec))
}

// Create godoc
// @Summary     Create a task
// @Description Stores a new task row for the authenticated user.
// @Tags        Records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     createReq true "Task row"
// @Success     200  {object} model.Record
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     401  {object} response.DetailResp "Not authenticated"
// @Failure     500  {object} response.DetailResp "Internal Server Error"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecordResp(rec))
}

// Update godoc
// @Summary     Replace a task
// @Description Overwrites title, description and completion of a task row.
// @Tags        Records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     int       true "Task ID"
// @Param       body body     updateReq true "Task row"
// @Success     200  {object} model.Record
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     401  {object} response.DetailResp "Not authenticated"
// @Failure     404  {object} response.DetailResp "Not Found"
// @Failure     500  {object} response.DetailResp "Internal Server Error"
// @Router      /tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		if errors.Is(err, errInvalidID) {
			h.abort(c, err)
			return
		}
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecordResp(rec))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task row.
// @Tags        Records
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} response.DetailResp "Task deleted"
// @Failure     401 {object} response.DetailResp "Not authenticated"
// @Failure     404 {object} response.DetailResp "Not Found"
// @Failure     500 {object} response.DetailResp "Internal Server Error"
// @Router      /tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		h.abort(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, response.DetailResp{Detail: "Task deleted"})
}

func (h *handler) abort(c *gin.Context, err error) {
	status, msg := mapError(err)
	response.Detail(c, status, msg)
}
