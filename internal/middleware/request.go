package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"life-admin/pkg/log"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when given,
// and attaches it to the context so log lines carry it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logging writes one line per request once the handler chain is done.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %dms", c.Request.Method, c.Request.URL.Path, status, time.Since(start).Milliseconds())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %dms", c.Request.Method, c.Request.URL.Path, status, time.Since(start).Milliseconds())
		default:
			m.l.Infof(ctx, "%s %s %d %dms", c.Request.Method, c.Request.URL.Path, status, time.Since(start).Milliseconds())
		}
	}
}
