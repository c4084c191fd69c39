package metric

import (
	"sort"

	"project-monitor/internal/schema"
)

// GanttRows lists the dated tasks of a table ordered by start date. A
// predecessor is reported only when it resolves inside the table.
func GanttRows(tbl schema.EnrichedTable) []GanttRow {
	rows := make([]GanttRow, 0, len(tbl.Tasks))
	for _, t := range tbl.Tasks {
		if !t.HasSchedule() {
			continue
		}
		row := GanttRow{Task: t, Color: t.Status.Color()}
		if p, dep, ok := tbl.Predecessor(t); ok {
			row.PredecessorID = p.ID
			row.PredecessorKind = dep.Kind
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Task.Start.Before(rows[j].Task.Start)
	})
	return rows
}
