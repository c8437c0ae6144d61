package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"life-admin/internal/model"
	"life-admin/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller's model.Scope in the
// request context. Failures answer 401 with a {"detail"} body.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verifier == nil {
			m.l.Errorf(c.Request.Context(), "middleware.Auth: no token verifier configured")
			response.Detail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		header := c.GetHeader("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Detail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		sc, err := m.verifier.Verify(c.Request.Context(), strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			response.Detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
