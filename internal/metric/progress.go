package metric

import (
	"project-monitor/internal/model"
)

// WeightedProgress is sum(weight*completion)/sum(weight), 0 when the total
// weight is 0. Non-positive weights contribute nothing.
func WeightedProgress(tasks []model.Task) float64 {
	var num, den float64
	for _, t := range tasks {
		if t.Weight <= 0 {
			continue
		}
		num += t.Weight * t.Completion
		den += t.Weight
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// WeightedPlannedProgress is the weighted mean of the tasks' planned progress.
func WeightedPlannedProgress(tasks []model.Task) float64 {
	var num, den float64
	for _, t := range tasks {
		if t.Weight <= 0 {
			continue
		}
		num += t.Weight * t.PlannedProgress
		den += t.Weight
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// ProjectSummaries aggregates tasks per project in first-seen order.
func ProjectSummaries(tasks []model.Task) []ProjectSummary {
	groups := make(map[string][]model.Task)
	var order []string
	for _, t := range tasks {
		if _, ok := groups[t.Project]; !ok {
			order = append(order, t.Project)
		}
		groups[t.Project] = append(groups[t.Project], t)
	}

	out := make([]ProjectSummary, 0, len(order))
	for _, p := range order {
		g := groups[p]
		var total float64
		for _, t := range g {
			if t.Weight > 0 {
				total += t.Weight
			}
		}
		out = append(out, ProjectSummary{
			Project:          p,
			Tasks:            len(g),
			StatusCounts:     CountByStatus(g),
			WeightedProgress: WeightedProgress(g),
			PlannedProgress:  WeightedPlannedProgress(g),
			TotalWeight:      total,
		})
	}
	return out
}
