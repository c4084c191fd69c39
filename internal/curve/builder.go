package curve

import (
	"math"
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/datemath"
)

// Build computes the planned and actual S-curve of tasks as seen on asOf.
//
// Periods step from the earliest start to the latest planned end; the last
// boundary never passes the span end. Planned progress of a task grows linearly
// from its start to its end. Actual progress assumes the completion observed on
// asOf accrued linearly from the task start, so periods at or after asOf carry
// the full observed completion.
func Build(tasks []model.Task, asOf time.Time, opts Options) Curve {
	step := opts.StepDays
	if step <= 0 {
		step = DefaultStepDays
	}

	var dated []model.Task
	var spanStart, spanEnd time.Time
	for _, t := range tasks {
		if !t.HasSchedule() {
			continue
		}
		if spanStart.IsZero() || t.Start.Before(spanStart) {
			spanStart = t.Start
		}
		if spanEnd.IsZero() || t.Finish.After(spanEnd) {
			spanEnd = t.Finish
		}
		if t.Weight > 0 {
			dated = append(dated, t)
		}
	}
	if spanStart.IsZero() {
		return Curve{}
	}

	periods := boundaries(spanStart, spanEnd, step)
	c := Curve{
		Periods: periods,
		Planned: make([]float64, len(periods)),
		Actual:  make([]float64, len(periods)),
		Tasks:   len(dated),
	}

	var total float64
	for _, t := range dated {
		total += t.Weight
	}
	if total > 0 {
		for i, p := range periods {
			var planned, actual float64
			for _, t := range dated {
				planned += t.Weight * plannedFraction(t, p)
				actual += t.Weight * actualFraction(t, p, asOf)
			}
			c.Planned[i] = 100 * planned / total
			c.Actual[i] = 100 * actual / total
		}
	}

	runningMax(c.Planned)
	runningMax(c.Actual)

	c.SPI, c.SPIPeriod = spi(c, asOf)
	return c
}

// boundaries steps from start by step days up to and including end.
func boundaries(start, end time.Time, step int) []time.Time {
	out := []time.Time{start}
	for p := start.AddDate(0, 0, step); !p.After(end); p = p.AddDate(0, 0, step) {
		out = append(out, p)
	}
	return out
}

func plannedFraction(t model.Task, p time.Time) float64 {
	if p.Before(t.Start) {
		return 0
	}
	if !p.Before(t.Finish) {
		return 1
	}
	return datemath.Fraction(t.Start, t.Finish, p)
}

func actualFraction(t model.Task, p, asOf time.Time) float64 {
	c := math.Max(0, math.Min(1, t.Completion/100))
	if p.Before(t.Start) {
		return 0
	}
	if !p.Before(asOf) {
		return c
	}
	return c * datemath.Fraction(t.Start, asOf, p)
}

func runningMax(values []float64) {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			values[i] = values[i-1]
		}
	}
}

func spi(c Curve, asOf time.Time) (float64, time.Time) {
	idx := -1
	for i, p := range c.Periods {
		if datemath.DaysBetween(p, asOf) < 0 {
			break
		}
		idx = i
	}
	if idx < 0 {
		return 0, time.Time{}
	}
	if c.Planned[idx] == 0 {
		return 0, c.Periods[idx]
	}
	return c.Actual[idx] / c.Planned[idx], c.Periods[idx]
}
