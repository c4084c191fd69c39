package http

import (
	"project-monitor/internal/dashboard"
	"project-monitor/internal/middleware"
	"project-monitor/pkg/log"
)

type handler struct {
	l              log.Logger
	uc             dashboard.UseCase
	mw             middleware.Middleware
	maxUploadBytes int64
}

// New creates a new HTTP handler for the dashboard domain.
func New(l log.Logger, uc dashboard.UseCase, mw middleware.Middleware, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		mw:             mw,
		maxUploadBytes: maxUploadBytes,
	}
}
