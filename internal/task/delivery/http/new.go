package http

import (
	"github.com/gin-gonic/gin"

	"life-admin/internal/task"
	"life-admin/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Signup(c *gin.Context)

	Dashboard(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ToggleStatus(c *gin.Context)

	ToggleChecklistItem(c *gin.Context)
	RegenerateChecklist(c *gin.Context)
	AttachDocument(c *gin.Context)
	RemoveDocument(c *gin.Context)

	CalendarLink(c *gin.Context)
	DownloadICS(c *gin.Context)
	PushToCalendar(c *gin.Context)

	Capture(c *gin.Context)
	CaptureAudio(c *gin.Context)
	Ask(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             task.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the task domain. maxUploadBytes bounds
// document uploads; larger files are read just far enough to be rejected.
// A value of zero or less means task.DefaultMaxDocumentBytes.
func New(l log.Logger, uc task.UseCase, maxUploadBytes int64) Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = task.DefaultMaxDocumentBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
