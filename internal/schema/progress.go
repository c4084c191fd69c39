package schema

import (
	"time"

	"project-monitor/pkg/datemath"
)

// PlannedProgress is the planned percentage of a task on day asOf: 0 before
// start, 100 at or after finish, linear in between. A zero-length task reads 50
// on its own day and 100 afterwards. Missing dates read 0.
func PlannedProgress(start, finish, asOf time.Time) float64 {
	if start.IsZero() || finish.IsZero() {
		return 0
	}
	if datemath.DaysBetween(start, asOf) < 0 {
		return 0
	}
	if start.Equal(finish) {
		if datemath.DaysBetween(start, asOf) == 0 {
			return 50
		}
		return 100
	}
	if !asOf.Before(finish) {
		return 100
	}
	return 100 * datemath.Fraction(start, finish, asOf)
}
