package report

import (
	"math"
	"strconv"

	"project-monitor/internal/metric"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/pkg/sheet"
	"project-monitor/pkg/textnorm"
)

var derivedColumns = []string{
	ColTaskUID, ColWBSLevel, ColIsMilestone, ColPredecessorID, ColPredecessorKind,
	ColDurationDays, ColPlanned, ColStatusCode,
}

// Build renders a report variant of tbl. Source cells are copied verbatim so
// an export reloads to the same explicit values.
func Build(kind Kind, tbl schema.EnrichedTable, opts Options) (Report, error) {
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = tbl.AsOf
	}

	var (
		cols  []int
		extra []string
		rows  []row
	)
	switch kind {
	case KindTable:
		cols = passThrough(tbl)
		for _, t := range tbl.Tasks {
			rows = append(rows, row{task: t})
		}
	case KindStatus:
		cols = canonicalColumns(tbl)
		for _, t := range tbl.Tasks {
			rows = append(rows, row{task: t})
		}
	case KindLate:
		cols = canonicalColumns(tbl)
		extra = []string{ColLateDays}
		for _, l := range metric.LateTasks(tbl.Tasks, asOf) {
			rows = append(rows, row{task: l.Task, extra: []string{strconv.Itoa(l.LateDays)}})
		}
	case KindPriority:
		cols = canonicalColumns(tbl)
		extra = []string{ColPriorityScore, ColRank}
		for i, r := range metric.RankByPriority(tbl.Tasks, asOf, opts.Limit) {
			rows = append(rows, row{task: r.Task, extra: []string{formatNumber(r.Score), strconv.Itoa(i + 1)}})
		}
	default:
		return Report{}, ErrUnknownKind
	}

	headers := make([]string, 0, len(cols)+len(derivedColumns)+len(extra))
	for _, c := range cols {
		headers = append(headers, tbl.Source.Headers[c])
	}
	headers = append(headers, derivedColumns...)
	headers = append(headers, extra...)

	out := sheet.Table{Name: string(kind), Headers: headers, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		src := tbl.SourceRow(r.task)
		cells := make([]string, 0, len(headers))
		for _, c := range cols {
			v := ""
			if c < len(src) {
				v = src[c]
			}
			cells = append(cells, v)
		}
		cells = append(cells, derived(r.task)...)
		cells = append(cells, r.extra...)
		out.Rows = append(out.Rows, cells)
	}
	return Report{Kind: kind, AsOf: asOf, Table: out}, nil
}

type row struct {
	task  model.Task
	extra []string
}

// passThrough selects every source column except stale derived columns of a
// previous export.
func passThrough(tbl schema.EnrichedTable) []int {
	skip := make(map[string]struct{})
	for _, c := range append(append([]string{}, derivedColumns...), ColLateDays, ColPriorityScore, ColRank) {
		skip[textnorm.Normalize(c)] = struct{}{}
	}
	var cols []int
	for i, h := range tbl.Source.Headers {
		if _, ok := skip[textnorm.Normalize(h)]; ok {
			continue
		}
		cols = append(cols, i)
	}
	return cols
}

// canonicalColumns selects the recognized loader columns in canonical order.
func canonicalColumns(tbl schema.EnrichedTable) []int {
	var cols []int
	for _, c := range append(append([]string{}, schema.RequiredColumns...), schema.OptionalColumns...) {
		if i, ok := tbl.Columns[c]; ok {
			cols = append(cols, i)
		}
	}
	return cols
}

func derived(t model.Task) []string {
	predID, predKind := "", ""
	if dep := t.Predecessor; dep != nil {
		predID, predKind = dep.DependsOnID, string(dep.Kind)
	}
	duration := ""
	if d, ok := t.DurationDays(); ok {
		duration = strconv.Itoa(d)
	}
	return []string{
		t.ID,
		strconv.Itoa(t.Level),
		strconv.FormatBool(t.Milestone),
		predID,
		predKind,
		duration,
		formatNumber(t.PlannedProgress),
		string(t.Status),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

