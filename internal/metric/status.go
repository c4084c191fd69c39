package metric

import (
	"sort"
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/datemath"
)

// CountByStatus counts tasks per status. Every known status is present; unknown
// statuses are counted under StatusUnknown only when they occur.
func CountByStatus(tasks []model.Task) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.KnownStatuses())+1)
	for _, s := range model.KnownStatuses() {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// UpcomingDeadlines counts tasks whose planned end falls within
// [asOf, asOf+withinDays], regardless of status.
func UpcomingDeadlines(tasks []model.Task, asOf time.Time, withinDays int) int {
	n := 0
	for _, t := range tasks {
		if t.Finish.IsZero() {
			continue
		}
		d := datemath.DaysBetween(asOf, t.Finish)
		if d >= 0 && d <= withinDays {
			n++
		}
	}
	return n
}

// LateTasks returns the tasks past their planned end on asOf that are not
// completed, most overdue first. LateDays is always at least 1.
func LateTasks(tasks []model.Task, asOf time.Time) []LateTask {
	var late []LateTask
	for _, t := range tasks {
		if t.Finish.IsZero() || t.Status == model.StatusCompleted {
			continue
		}
		if d := datemath.DaysBetween(t.Finish, asOf); d >= 1 {
			late = append(late, LateTask{Task: t, LateDays: d})
		}
	}
	sort.SliceStable(late, func(i, j int) bool {
		return late[i].LateDays > late[j].LateDays
	})
	return late
}
