package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the record store's task CRUD. Every route sits behind auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, auth gin.HandlerFunc) {
	tasks := rg.Group("/tasks", auth)
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
