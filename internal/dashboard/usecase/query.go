package usecase

import (
	"context"

	"project-monitor/internal/curve"
	"project-monitor/internal/dashboard"
	"project-monitor/internal/metric"
	"project-monitor/internal/model"
	"project-monitor/internal/zone"
)

// Overview computes the KPI cards of the filtered table.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.OverviewOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.OverviewOutput{}, err
	}

	c := curve.Build(tbl.Tasks, v.AsOf, curve.Options{StepDays: uc.cfg.CurveStepDays})
	return dashboard.OverviewOutput{
		View:               v,
		StatusCounts:       metric.CountByStatus(tbl.Tasks),
		WeightedProgress:   metric.WeightedProgress(tbl.Tasks),
		PlannedProgress:    metric.WeightedPlannedProgress(tbl.Tasks),
		Upcoming:           metric.UpcomingDeadlines(tbl.Tasks, v.AsOf, uc.cfg.UpcomingWindowDays),
		UpcomingWindowDays: uc.cfg.UpcomingWindowDays,
		Late:               len(metric.LateTasks(tbl.Tasks, v.AsOf)),
		SPI:                c.SPI,
		Projects:           metric.ProjectSummaries(tbl.Tasks),
	}, nil
}

// Filters lists the values a filter widget offers for a column.
func (uc *implUseCase) Filters(ctx context.Context, sc model.Scope, input dashboard.FiltersInput) (dashboard.FiltersOutput, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return dashboard.FiltersOutput{}, err
	}
	out := dashboard.FiltersOutput{Column: input.Column, Projects: sess.Table.Projects()}
	if input.Column == "" {
		return out, nil
	}
	values, err := sess.Table.UniqueValues(input.Column)
	if err != nil {
		return dashboard.FiltersOutput{}, err
	}
	out.Values = values
	return out, nil
}

// SCurve builds the planned/actual curve of the filtered table.
func (uc *implUseCase) SCurve(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.SCurveOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.SCurveOutput{}, err
	}
	return dashboard.SCurveOutput{
		View:  v,
		Curve: curve.Build(tbl.Tasks, v.AsOf, curve.Options{StepDays: uc.cfg.CurveStepDays}),
	}, nil
}

// Zones aggregates progress per zone of the filtered table.
func (uc *implUseCase) Zones(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.ZonesOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.ZonesOutput{}, err
	}
	return dashboard.ZonesOutput{View: v, Result: zone.Aggregate(tbl, uc.classifier)}, nil
}

// Late lists overdue, unfinished tasks.
func (uc *implUseCase) Late(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.LateOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.LateOutput{}, err
	}
	return dashboard.LateOutput{View: v, Tasks: metric.LateTasks(tbl.Tasks, v.AsOf)}, nil
}

// Priority ranks tasks by priority score.
func (uc *implUseCase) Priority(ctx context.Context, sc model.Scope, input dashboard.PriorityInput) (dashboard.PriorityOutput, error) {
	if input.Limit < 0 {
		return dashboard.PriorityOutput{}, dashboard.ErrInvalidInput
	}
	tbl, v, err := uc.view(ctx, sc, input.QueryInput)
	if err != nil {
		return dashboard.PriorityOutput{}, err
	}
	return dashboard.PriorityOutput{View: v, Tasks: metric.RankByPriority(tbl.Tasks, v.AsOf, input.Limit)}, nil
}

// Gantt lists the timeline bars of the filtered table.
func (uc *implUseCase) Gantt(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.GanttOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.GanttOutput{}, err
	}
	return dashboard.GanttOutput{View: v, Rows: metric.GanttRows(tbl)}, nil
}

// Contracts computes the time-elapsed summary.
func (uc *implUseCase) Contracts(ctx context.Context, sc model.Scope, input dashboard.QueryInput) (dashboard.ContractsOutput, error) {
	tbl, v, err := uc.view(ctx, sc, input)
	if err != nil {
		return dashboard.ContractsOutput{}, err
	}
	return dashboard.ContractsOutput{View: v, Summary: metric.SummarizeContracts(tbl.Tasks, v.AsOf)}, nil
}
