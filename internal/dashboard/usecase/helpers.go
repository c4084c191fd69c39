package usecase

import (
	"context"
	"time"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
)

// session fetches the caller's session. A session owned by another user is
// reported as missing.
func (uc *implUseCase) session(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	if sc.SessionID == "" {
		return dashboard.Session{}, dashboard.ErrSessionNotFound
	}
	sess, err := uc.repo.GetSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.session GetSession: %v", err)
		return dashboard.Session{}, err
	}
	if sess.ID == "" {
		return dashboard.Session{}, dashboard.ErrSessionNotFound
	}
	if sess.UserID != "" && sess.UserID != sc.UserID {
		uc.l.Warnf(ctx, "uc.session: session belongs to another user")
		return dashboard.Session{}, dashboard.ErrSessionNotFound
	}
	return sess, nil
}

// asOf resolves the request's "as of" expression against the clock.
func (uc *implUseCase) asOf(expr string) (time.Time, error) {
	t, err := uc.dates.Parse(expr, uc.now())
	if err != nil {
		return time.Time{}, dashboard.ErrInvalidAsOf
	}
	return t, nil
}

// view returns the session table as seen on the requested day, filtered.
// Planned progress is re-derived when the day differs from the load day.
func (uc *implUseCase) view(ctx context.Context, sc model.Scope, q dashboard.QueryInput) (schema.EnrichedTable, dashboard.View, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return schema.EnrichedTable{}, dashboard.View{}, err
	}
	asOf, err := uc.asOf(q.AsOf)
	if err != nil {
		return schema.EnrichedTable{}, dashboard.View{}, err
	}

	tbl := sess.Table
	if !tbl.AsOf.Equal(asOf) {
		raw, _ := sess.Workbook.Sheet(sess.Sheet)
		if tbl, err = uc.loader.Load(raw, asOf); err != nil {
			uc.l.Errorf(ctx, "uc.view Load: %v", err)
			return schema.EnrichedTable{}, dashboard.View{}, err
		}
	}

	filtered, err := tbl.Filter(q.Filter)
	if err != nil {
		return schema.EnrichedTable{}, dashboard.View{}, err
	}
	return filtered, dashboard.View{
		AsOf:     tbl.AsOf,
		Total:    tbl.Len(),
		Filtered: filtered.Len(),
		Stats:    filtered.Stats(),
	}, nil
}
