package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"project-monitor/pkg/log"
	"project-monitor/pkg/response"
)

// Identity reads the user set by the upstream identity proxy. The service
// never verifies credentials itself; when auth is required a request without
// the header is rejected.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := strings.TrimSpace(c.GetHeader(m.authConfig.IdentityHeader))
		if user == "" && m.authConfig.Required {
			m.l.Warnf(c.Request.Context(), "middleware.Identity: missing %s header", m.authConfig.IdentityHeader)
			response.Unauthorized(c)
			return
		}
		if user != "" {
			setContextValue(c, userIDKey, log.UserKey, user)
		}
		c.Next()
	}
}
