package zone

import (
	"sort"

	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/pkg/textnorm"
)

// Aggregation sources.
const (
	ModeArea    = "area"
	ModeKeyword = "keyword"
)

// Result is the progress per zone.
type Result struct {
	Mode     string
	Zones    []string // keys of Progress in display order
	Progress map[string]float64
	Counts   map[string]int
	Skipped  int // tasks without an area or matching no keyword
}

// Aggregate computes the progress of each zone. When the table has an area
// column, tasks are grouped by its normalized value. Otherwise cls assigns zones
// from task descriptions, unmatched tasks are dropped, and every zone of cls is
// reported, at 0 when nothing matched it.
func Aggregate(tbl schema.EnrichedTable, cls Classifier) Result {
	groups := make(map[string][]model.Task)
	res := Result{Progress: make(map[string]float64), Counts: make(map[string]int)}

	if tbl.HasColumn(schema.ColArea) {
		res.Mode = ModeArea
		for _, t := range tbl.Tasks {
			z := textnorm.Normalize(t.Area)
			if z == "" {
				res.Skipped++
				continue
			}
			groups[z] = append(groups[z], t)
		}
		for z := range groups {
			res.Zones = append(res.Zones, z)
		}
		sort.Strings(res.Zones)
	} else {
		res.Mode = ModeKeyword
		for _, t := range tbl.Tasks {
			z, ok := cls.Classify(t.Description)
			if !ok {
				res.Skipped++
				continue
			}
			groups[z] = append(groups[z], t)
		}
		res.Zones = cls.Zones()
	}

	for _, z := range res.Zones {
		res.Progress[z] = meanProgress(groups[z])
		res.Counts[z] = len(groups[z])
	}
	return res
}

// meanProgress is the weight-normalized completion of tasks, falling back to
// the simple mean when the group carries no weight.
func meanProgress(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var num, den, sum float64
	for _, t := range tasks {
		sum += t.Completion
		if t.Weight > 0 {
			num += t.Weight * t.Completion
			den += t.Weight
		}
	}
	if den > 0 {
		return num / den
	}
	return sum / float64(len(tasks))
}
