package usecase

import (
	"context"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/model"
	"project-monitor/internal/report"
	"project-monitor/pkg/sheet"
)

// Export renders a report variant of the filtered table.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input dashboard.ExportInput) (dashboard.ExportOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input.QueryInput)
	if err != nil {
		return dashboard.ExportOutput{}, err
	}

	if input.Format == "" {
		input.Format = sheet.FormatCSV
	}

	rep, err := report.Build(input.Kind, tbl, report.Options{AsOf: v.AsOf, Limit: input.Limit})
	if err != nil {
		return dashboard.ExportOutput{}, err
	}

	f, err := report.Encode(rep, input.Format)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export Encode: %v", err)
		return dashboard.ExportOutput{}, err
	}
	return dashboard.ExportOutput{File: f, Rows: len(rep.Table.Rows)}, nil
}
