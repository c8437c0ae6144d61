package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	session := rg.Group("/session")
	{
		session.POST("/login", h.Login)
		session.POST("/signup", h.Signup)
	}

	rg.GET("/dashboard", h.Dashboard)
	rg.POST("/capture", h.Capture)
	rg.POST("/capture/audio", h.CaptureAudio)
	rg.POST("/ask", h.Ask)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.ToggleStatus)

		tasks.PUT("/:id/checklist", h.RegenerateChecklist)
		tasks.POST("/:id/checklist/:itemId/toggle", h.ToggleChecklistItem)

		tasks.POST("/:id/documents", h.AttachDocument)
		tasks.DELETE("/:id/documents/:docId", h.RemoveDocument)

		tasks.GET("/:id/calendar-link", h.CalendarLink)
		tasks.GET("/:id/ics", h.DownloadICS)
		tasks.POST("/:id/calendar", h.PushToCalendar)
	}
}
