package metric

import (
	"math"
	"sort"
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/datemath"
)

// PriorityScore rates how urgently a task needs attention on asOf, in [0,100].
// A task without a planned end, or whose inputs do not produce a finite score,
// gets NeutralPriority.
func PriorityScore(t model.Task, asOf time.Time) float64 {
	if t.Finish.IsZero() || asOf.IsZero() {
		return NeutralPriority
	}

	deadline := 100.0
	if days := datemath.DaysBetween(asOf, t.Finish); days > 1 {
		deadline = math.Min(100, 100/float64(days))
	}

	status, ok := statusUrgency[t.Status]
	if !ok {
		status = unknownStatusUrgency
	}

	score := deadline*deadlineShare +
		t.Weight*weightScale*weightShare +
		status*statusShare +
		(100-t.Completion)*incompleteShare

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return NeutralPriority
	}
	return math.Max(0, math.Min(100, score))
}

// RankByPriority scores every task and returns them highest first. Ties keep
// source order. limit <= 0 returns all tasks.
func RankByPriority(tasks []model.Task, asOf time.Time, limit int) []RankedTask {
	ranked := make([]RankedTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, RankedTask{Task: t, Score: PriorityScore(t, asOf)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
