package middleware

import (
	"project-monitor/config"
	"project-monitor/pkg/log"
)

type Middleware struct {
	l             log.Logger
	sessionConfig config.SessionConfig
	authConfig    config.AuthConfig
	uploadLimiter *rateLimiter
	secureCookie  bool
}

func New(l log.Logger, sessionConfig config.SessionConfig, authConfig config.AuthConfig, uploadRatePerMin int, secureCookie bool) Middleware {
	return Middleware{
		l:             l,
		sessionConfig: sessionConfig,
		authConfig:    authConfig,
		uploadLimiter: newRateLimiter(uploadRatePerMin),
		secureCookie:  secureCookie,
	}
}
