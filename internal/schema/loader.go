package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/sheet"
	"project-monitor/pkg/textnorm"
)

// Loader turns raw sheets into enriched tables.
type Loader struct {
	dates  *datemath.Parser
	levels LevelInferer
}

// Option configures a Loader.
type Option func(*Loader)

// WithLevelInferer replaces the dotted-number hierarchy heuristic.
func WithLevelInferer(li LevelInferer) Option {
	return func(l *Loader) {
		if li != nil {
			l.levels = li
		}
	}
}

// NewLoader creates a Loader reading dates in the parser's timezone.
func NewLoader(dates *datemath.Parser, opts ...Option) *Loader {
	l := &Loader{
		dates:  dates,
		levels: DottedNumberInferer{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load normalizes raw and derives the missing task fields. asOf drives the
// planned-progress column. Only missing required columns fail the load; bad
// cells are recorded in ParseErrors and read as missing.
func (l *Loader) Load(raw sheet.Table, asOf time.Time) (EnrichedTable, error) {
	headers := make([]string, len(raw.Headers))
	for i, h := range raw.Headers {
		headers[i] = strings.TrimSpace(h)
	}

	cols := resolveColumns(headers)
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return EnrichedTable{}, &SchemaError{Missing: missing}
	}

	day := l.dates.StartOfDay(asOf)
	out := EnrichedTable{
		Source:  sheet.Table{Name: raw.Name, Headers: headers, Rows: raw.Rows},
		Columns: cols,
		Tasks:   make([]model.Task, 0, len(raw.Rows)),
		AsOf:    day,
	}

	ids := newIDAllocator(raw.Rows, cols)
	for i, row := range raw.Rows {
		r := rowReader{row: row, cols: cols, index: i}
		t := l.buildTask(&r, day, ids)
		out.Tasks = append(out.Tasks, t)
		out.ParseErrors = append(out.ParseErrors, r.errs...)
	}

	synthesizeChain(out.Tasks)
	out.reindex()
	return out, nil
}

func (l *Loader) buildTask(r *rowReader, day time.Time, ids *idAllocator) model.Task {
	t := model.Task{
		Row:         r.index,
		Project:     textnorm.Normalize(r.cell(ColProject)),
		Description: textnorm.Normalize(r.cell(ColDescription)),
		StatusText:  textnorm.Normalize(r.cell(ColStatus)),
		Area:        strings.TrimSpace(r.cell(ColArea)),
		Resource:    strings.TrimSpace(r.cell(ColResource)),
		SubArea:     strings.TrimSpace(r.cell(ColSubArea)),
	}
	t.Status, _ = model.ParseStatus(t.StatusText)

	t.Start = r.date(l.dates, ColStart)
	t.Finish = r.date(l.dates, ColFinish)
	t.Completion = r.completion()
	t.Weight = r.number(ColWeight)

	if id := strings.TrimSpace(r.cell(ColTaskID)); id != "" {
		t.ID, t.IDSource = id, model.ProvenanceExplicit
	} else {
		t.ID, t.IDSource = ids.next(r.index), model.ProvenanceInferred
	}

	t.Level, t.LevelSource = DefaultLevel, model.ProvenanceInferred
	if lvl, ok := r.level(); ok {
		t.Level, t.LevelSource = lvl, model.ProvenanceExplicit
	} else if lvl, ok := l.levels.InferLevel(t.Description); ok && lvl > 0 {
		t.Level = lvl
	}

	t.MilestoneSource = model.ProvenanceInferred
	if m, ok := r.boolean(ColMilestone); ok {
		t.Milestone, t.MilestoneSource = m, model.ProvenanceExplicit
	} else if days, ok := t.DurationDays(); ok {
		t.Milestone = days <= 1
	}

	if pred := strings.TrimSpace(r.cell(ColPredecessor)); pred != "" {
		t.Predecessor = &model.Dependency{TaskID: t.ID, DependsOnID: pred, Kind: model.DependencyExplicit}
	}

	t.PlannedProgress = PlannedProgress(t.Start, t.Finish, day)
	return t
}

// SyntheticID is the identifier given to row index i when the sheet has none.
func SyntheticID(i int) string {
	return fmt.Sprintf("T%04d", i+1)
}

// idAllocator mints synthetic IDs that never repeat an explicit TASK ID.
type idAllocator struct {
	taken map[string]struct{}
}

func newIDAllocator(rows [][]string, cols map[string]int) *idAllocator {
	a := &idAllocator{taken: make(map[string]struct{})}
	col, ok := cols[ColTaskID]
	if !ok {
		return a
	}
	for _, row := range rows {
		if col < len(row) {
			if id := strings.TrimSpace(row[col]); id != "" {
				a.taken[id] = struct{}{}
			}
		}
	}
	return a
}

// next returns SyntheticID(i), or the first free one after it.
func (a *idAllocator) next(i int) string {
	id := SyntheticID(i)
	for n := i + 1; ; n++ {
		if _, dup := a.taken[id]; !dup {
			break
		}
		id = SyntheticID(n)
	}
	a.taken[id] = struct{}{}
	return id
}

// rowReader reads typed cells from one data row and collects parse errors.
type rowReader struct {
	row   []string
	cols  map[string]int
	index int
	errs  []FieldParseError
}

func (r *rowReader) cell(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

func (r *rowReader) fail(col, value string, err error) {
	r.errs = append(r.errs, FieldParseError{Row: r.index, Column: col, Value: value, Err: err})
}

func (r *rowReader) date(p *datemath.Parser, col string) time.Time {
	v := r.cell(col)
	t, err := p.ParseCell(v)
	if err != nil {
		if !errors.Is(err, datemath.ErrEmptyCell) {
			r.fail(col, v, err)
		}
		return time.Time{}
	}
	return t
}

func (r *rowReader) number(col string) float64 {
	v := strings.TrimSpace(r.cell(col))
	if v == "" {
		return 0
	}
	f, err := parseNumber(v)
	if err != nil {
		r.fail(col, v, err)
		return 0
	}
	return f
}

// completion reads % COMPLETE. Values <= 1 are fractions and are scaled by 100;
// a trailing "%" marks the value as already a percentage.
func (r *rowReader) completion() float64 {
	v := strings.TrimSpace(r.cell(ColCompletion))
	if v == "" {
		return 0
	}
	percent := strings.HasSuffix(v, "%")
	f, err := parseNumber(strings.TrimSuffix(v, "%"))
	if err != nil {
		r.fail(ColCompletion, v, err)
		return 0
	}
	return RescaleCompletion(f, percent)
}

// RescaleCompletion applies the load-time fraction rule. Out-of-range values
// pass through unclamped.
func RescaleCompletion(v float64, alreadyPercent bool) float64 {
	if !alreadyPercent && v <= 1 {
		return v * 100
	}
	return v
}

func (r *rowReader) level() (int, bool) {
	v := strings.TrimSpace(r.cell(ColLevel))
	if v == "" {
		return 0, false
	}
	f, err := parseNumber(v)
	if err != nil || f < 1 || f != float64(int(f)) {
		r.fail(ColLevel, v, fmt.Errorf("level must be a positive integer"))
		return 0, false
	}
	return int(f), true
}

func (r *rowReader) boolean(col string) (bool, bool) {
	v := textnorm.Normalize(r.cell(col))
	switch v {
	case "":
		return false, false
	case "1", "TRUE", "YES", "Y", "YA", "X":
		return true, true
	case "0", "FALSE", "NO", "N", "TIDAK", "-":
		return false, true
	}
	r.fail(col, v, fmt.Errorf("not a boolean"))
	return false, false
}

// parseNumber accepts "1.5", "1,5" and "1,234.5". NaN and infinities are
// rejected.
func parseNumber(v string) (float64, error) {
	v = strings.ReplaceAll(strings.TrimSpace(v), " ", "")
	if strings.Contains(v, ",") {
		if strings.Contains(v, ".") {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.ReplaceAll(v, ",", ".")
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", v)
	}
	return f, nil
}
