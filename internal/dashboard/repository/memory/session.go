package memory

import (
	"context"

	"project-monitor/internal/dashboard"
	repo "project-monitor/internal/dashboard/repository"
)

// SaveSession stores s under its id, replacing any previous table.
func (r *implRepository) SaveSession(ctx context.Context, s dashboard.Session) error {
	if s.ID == "" {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSession"), repo.ErrInvalidID)
		return repo.ErrInvalidID
	}
	r.cache.Set(s.ID, s, r.ttl)
	return nil
}

// GetSession returns the session and extends its lifetime.
// Returns zero-value Session (ID == "") when not found.
func (r *implRepository) GetSession(ctx context.Context, id string) (dashboard.Session, error) {
	if id == "" {
		return dashboard.Session{}, nil
	}
	v, ok := r.cache.Get(id)
	if !ok {
		return dashboard.Session{}, nil
	}
	s, ok := v.(dashboard.Session)
	if !ok {
		r.l.Warnf(ctx, "%s: unexpected entry type %T", r.dsn("GetSession"), v)
		r.cache.Delete(id)
		return dashboard.Session{}, nil
	}
	r.cache.Set(id, s, r.ttl)
	return s, nil
}

// DeleteSession drops a session. Deleting a missing session is not an error.
func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

func (r *implRepository) CountSessions(ctx context.Context) int {
	return r.cache.ItemCount()
}
