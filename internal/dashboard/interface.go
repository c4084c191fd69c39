package dashboard

import (
	"context"

	"project-monitor/internal/model"
)

// UseCase is the session-scoped dashboard pipeline. Every call carries the
// caller's Scope; sessions never see each other's tables.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Session lifecycle
	Upload(ctx context.Context, sc model.Scope, input UploadInput) (LoadOutput, error)
	ImportGoogleSheet(ctx context.Context, sc model.Scope, input ImportInput) (LoadOutput, error)
	SelectSheet(ctx context.Context, sc model.Scope, input SelectSheetInput) (LoadOutput, error)
	Sheets(ctx context.Context, sc model.Scope) (SheetsOutput, error)
	Close(ctx context.Context, sc model.Scope) error

	// Views
	Overview(ctx context.Context, sc model.Scope, input QueryInput) (OverviewOutput, error)
	Filters(ctx context.Context, sc model.Scope, input FiltersInput) (FiltersOutput, error)
	SCurve(ctx context.Context, sc model.Scope, input QueryInput) (SCurveOutput, error)
	Zones(ctx context.Context, sc model.Scope, input QueryInput) (ZonesOutput, error)
	Late(ctx context.Context, sc model.Scope, input QueryInput) (LateOutput, error)
	Priority(ctx context.Context, sc model.Scope, input PriorityInput) (PriorityOutput, error)
	Gantt(ctx context.Context, sc model.Scope, input QueryInput) (GanttOutput, error)
	Contracts(ctx context.Context, sc model.Scope, input QueryInput) (ContractsOutput, error)

	// Exports
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
