package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the public account routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
}
