package schema

import (
	"sort"

	"project-monitor/internal/model"
)

// synthesizeChain links each dated task of a project to the one starting before
// it. Tasks that already carry a sheet-supplied predecessor keep it; undated
// tasks are left out of the chain.
func synthesizeChain(tasks []model.Task) {
	byProject := make(map[string][]int)
	var order []string
	for i, t := range tasks {
		if t.Start.IsZero() {
			continue
		}
		if _, ok := byProject[t.Project]; !ok {
			order = append(order, t.Project)
		}
		byProject[t.Project] = append(byProject[t.Project], i)
	}

	for _, project := range order {
		idx := byProject[project]
		sort.SliceStable(idx, func(a, b int) bool {
			return tasks[idx[a]].Start.Before(tasks[idx[b]].Start)
		})
		for k := 1; k < len(idx); k++ {
			cur := &tasks[idx[k]]
			if cur.Predecessor != nil {
				continue
			}
			cur.Predecessor = &model.Dependency{
				TaskID:      cur.ID,
				DependsOnID: tasks[idx[k-1]].ID,
				Kind:        model.DependencyInferred,
			}
		}
	}
}
