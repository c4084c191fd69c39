package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"project-monitor/internal/model"
)

const (
	sessionIDKey = "middleware.session_id"
	userIDKey    = "middleware.user_id"
)

// GetScope returns the caller's scope assembled by Identity and Session.
func GetScope(c *gin.Context) model.Scope {
	return model.Scope{
		SessionID: c.GetString(sessionIDKey),
		UserID:    c.GetString(userIDKey),
	}
}

// setContextValue stores v on the gin context and on the request context so
// the logger picks it up.
func setContextValue(c *gin.Context, ginKey string, logKey any, v string) {
	c.Set(ginKey, v)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logKey, v))
}
