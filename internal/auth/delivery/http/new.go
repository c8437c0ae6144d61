package http

import (
	"github.com/gin-gonic/gin"

	"life-admin/internal/auth"
	"life-admin/pkg/log"
)

type Handler interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates the signup/login HTTP handler.
func New(l log.Logger, uc auth.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
