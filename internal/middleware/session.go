package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-monitor/pkg/log"
)

// Session resolves the session id from the configured header or cookie. A
// missing or malformed id starts a new session: a fresh id is issued in both
// the cookie and the response header.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(m.sessionConfig.HeaderName)
		if id == "" {
			id, _ = c.Cookie(m.sessionConfig.CookieName)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(m.sessionConfig.CookieName, id, int(m.sessionConfig.TTL.Seconds()), "/", "", m.secureCookie, true)
		}
		c.Header(m.sessionConfig.HeaderName, id)

		setContextValue(c, sessionIDKey, log.SessionIDKey, id)
		c.Next()
	}
}

// EndSession expires the session cookie. Registered after a successful teardown.
func (m Middleware) EndSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.sessionConfig.CookieName, "", -1, "/", "", m.secureCookie, true)
}
