package http

import (
	"github.com/gin-gonic/gin"

	"life-admin/internal/record"
	"life-admin/pkg/log"
)

// Handler is the public interface for the record store HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc record.UseCase
}

// New creates a new HTTP handler for task rows.
func New(l log.Logger, uc record.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
