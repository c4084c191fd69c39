package schema

import (
	"fmt"
	"sort"
	"strings"

	"project-monitor/internal/model"
	"project-monitor/pkg/textnorm"
)

func (t *EnrichedTable) reindex() {
	t.byID = make(map[string]int, len(t.Tasks))
	for i, task := range t.Tasks {
		if _, dup := t.byID[task.ID]; !dup {
			t.byID[task.ID] = i
		}
	}
}

// Len returns the number of tasks.
func (t EnrichedTable) Len() int {
	return len(t.Tasks)
}

// HasColumn reports whether a canonical column was present in the source.
func (t EnrichedTable) HasColumn(canonical string) bool {
	_, ok := t.Columns[canonical]
	return ok
}

// TaskByID finds a task in this table.
func (t EnrichedTable) TaskByID(id string) (model.Task, bool) {
	i, ok := t.byID[id]
	if !ok {
		return model.Task{}, false
	}
	return t.Tasks[i], true
}

// Predecessor resolves a task's dependency. Dangling references report false.
func (t EnrichedTable) Predecessor(task model.Task) (model.Task, *model.Dependency, bool) {
	if task.Predecessor == nil {
		return model.Task{}, nil, false
	}
	p, ok := t.TaskByID(task.Predecessor.DependsOnID)
	if !ok {
		return model.Task{}, task.Predecessor, false
	}
	return p, task.Predecessor, true
}

// SourceRow returns the original cells of the task's row.
func (t EnrichedTable) SourceRow(task model.Task) []string {
	if task.Row < 0 || task.Row >= len(t.Source.Rows) {
		return nil
	}
	return t.Source.Rows[task.Row]
}

// Stats summarizes row counts for exclusion reporting.
func (t EnrichedTable) Stats() Stats {
	s := Stats{Rows: len(t.Tasks), ParseErrors: len(t.ParseErrors)}
	for _, task := range t.Tasks {
		if task.HasSchedule() {
			s.Dated++
		}
		if task.Weight > 0 {
			s.Weighted++
		}
	}
	s.Undated = s.Rows - s.Dated
	return s
}

// Filter returns a new table holding the tasks that match f. Predecessor
// lookups in the result only see tasks that survived the filter.
func (t EnrichedTable) Filter(f Filter) (EnrichedTable, error) {
	if f.IsZero() {
		return t, nil
	}

	col := -1
	if f.Column != "" && f.Value != "" {
		idx, err := t.columnIndex(f.Column)
		if err != nil {
			return EnrichedTable{}, err
		}
		col = idx
	}

	project := textnorm.Normalize(f.Project)
	value := textnorm.Normalize(f.Value)

	out := t
	out.Tasks = make([]model.Task, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		if project != "" && task.Project != project {
			continue
		}
		if col >= 0 {
			row := t.SourceRow(task)
			if col >= len(row) || textnorm.Normalize(row[col]) != value {
				continue
			}
		}
		out.Tasks = append(out.Tasks, task)
	}
	out.reindex()
	return out, nil
}

// UniqueValues lists the distinct normalized non-empty values of a column, sorted.
func (t EnrichedTable) UniqueValues(column string) ([]string, error) {
	col, err := t.columnIndex(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var values []string
	for _, task := range t.Tasks {
		row := t.SourceRow(task)
		if col >= len(row) {
			continue
		}
		v := textnorm.Normalize(row[col])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values, nil
}

// Projects lists the distinct project identifiers in first-seen order.
func (t EnrichedTable) Projects() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, task := range t.Tasks {
		if _, ok := seen[task.Project]; !ok {
			seen[task.Project] = struct{}{}
			out = append(out, task.Project)
		}
	}
	return out
}

// columnIndex resolves a header by canonical alias first, then by normalized header text.
func (t EnrichedTable) columnIndex(header string) (int, error) {
	if c, ok := Canonical(header); ok {
		if i, ok := t.Columns[c]; ok {
			return i, nil
		}
	}
	key := textnorm.Normalize(header)
	for i, h := range t.Source.Headers {
		if textnorm.Normalize(h) == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownColumn, strings.TrimSpace(header))
}
