package repository

import (
	"context"

	"project-monitor/internal/dashboard"
)

// Repository stores one Session per session id.
type Repository interface {
	SessionRepository
}

// SessionRepository defines access to loaded sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, s dashboard.Session) error
	// GetSession returns a zero Session (ID == "") when none exists.
	GetSession(ctx context.Context, id string) (dashboard.Session, error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) int
}
