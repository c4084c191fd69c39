package metric

import (
	"math"
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/datemath"
)

// TimeElapsed is the share of a task's planned duration that has passed on
// asOf, clipped to [0,100]. ok is false without valid, ordered dates.
func TimeElapsed(t model.Task, asOf time.Time) (float64, bool) {
	days, ok := t.DurationDays()
	if !ok || days <= 0 {
		return 0, false
	}
	pct := 100 * datemath.Fraction(t.Start, t.Finish, asOf)
	return math.Max(0, math.Min(100, pct)), true
}

// ElapsedBucket places a time-elapsed percentage in its bucket. Bucket upper
// bounds are inclusive.
func ElapsedBucket(pct float64) string {
	switch {
	case pct <= 30:
		return BucketUnder30
	case pct <= 50:
		return Bucket30To50
	case pct <= 80:
		return Bucket50To80
	default:
		return BucketOver80
	}
}

// SummarizeContracts computes the time-elapsed view over tasks with valid,
// ordered dates. Other tasks are counted in Excluded.
func SummarizeContracts(tasks []model.Task, asOf time.Time) ContractSummary {
	s := ContractSummary{Buckets: make(map[string]int, 4)}
	for _, b := range ElapsedBuckets() {
		s.Buckets[b] = 0
	}

	var total int
	for _, t := range tasks {
		pct, ok := TimeElapsed(t, asOf)
		if !ok {
			s.Excluded++
			continue
		}
		days, _ := t.DurationDays()
		bucket := ElapsedBucket(pct)
		s.Rows = append(s.Rows, ContractRow{Task: t, DurationDays: days, TimeElapsed: pct, Bucket: bucket})
		s.Buckets[bucket]++

		if s.Duration.Count == 0 || days < s.Duration.Min {
			s.Duration.Min = days
		}
		if days > s.Duration.Max {
			s.Duration.Max = days
		}
		s.Duration.Count++
		total += days
	}
	if s.Duration.Count > 0 {
		s.Duration.Avg = float64(total) / float64(s.Duration.Count)
	}
	return s
}
