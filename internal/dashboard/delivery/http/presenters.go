package http

import (
	"math"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/metric"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/internal/zone"
	"project-monitor/pkg/response"
)

// --- Request DTOs ---

type queryReq struct {
	Project string `form:"project"`
	Column  string `form:"column"`
	Value   string `form:"value"`
	AsOf    string `form:"as_of"`
}

func (r queryReq) validate() error {
	if (r.Column == "") != (r.Value == "") {
		return errInvalidParams
	}
	return nil
}

func (r queryReq) toInput() dashboard.QueryInput {
	return dashboard.QueryInput{
		Filter: schema.Filter{Project: r.Project, Column: r.Column, Value: r.Value},
		AsOf:   r.AsOf,
	}
}

type priorityReq struct {
	queryReq
	Limit int `form:"limit" binding:"min=0,max=1000"`
}

type exportReq struct {
	queryReq
	Format string `form:"format"`
	Limit  int    `form:"limit" binding:"min=0"`
}

type uploadReq struct {
	Sheet    string `form:"sheet"`
	SkipRows *int   `form:"skip_rows" binding:"omitempty,min=0"`
}

type importReq struct {
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
	Sheet         string `json:"sheet"`
	SkipRows      *int   `json:"skip_rows" binding:"omitempty,min=0"`
}

func (r importReq) toInput() dashboard.ImportInput {
	return dashboard.ImportInput{SpreadsheetID: r.SpreadsheetID, Sheet: r.Sheet, SkipRows: r.SkipRows}
}

type selectSheetReq struct {
	Sheet string `json:"sheet" binding:"required"`
}

type filtersReq struct {
	Column string `form:"column"`
}

// --- Response DTOs ---

type parseErrorResp struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Error  string `json:"error"`
}

type statsResp struct {
	Rows        int `json:"rows"`
	Dated       int `json:"dated"`
	Undated     int `json:"undated"`
	Weighted    int `json:"weighted"`
	ParseErrors int `json:"parse_errors"`
}

func newStatsResp(s schema.Stats) statsResp {
	return statsResp(s)
}

type loadResp struct {
	SessionID   string           `json:"session_id"`
	Source      string           `json:"source"`
	Sheets      []string         `json:"sheets"`
	Sheet       string           `json:"sheet"`
	Columns     []string         `json:"columns"`
	Stats       statsResp        `json:"stats"`
	ParseErrors []parseErrorResp `json:"parse_errors"`
}

// maxParseErrors caps the cell errors echoed back after a load.
const maxParseErrors = 100

func (h *handler) newLoadResp(out dashboard.LoadOutput) loadResp {
	errs := out.ParseErrors
	if len(errs) > maxParseErrors {
		errs = errs[:maxParseErrors]
	}
	resp := loadResp{
		SessionID:   out.SessionID,
		Source:      out.Source,
		Sheets:      out.Sheets,
		Sheet:       out.Sheet,
		Columns:     out.Columns,
		Stats:       newStatsResp(out.Stats),
		ParseErrors: make([]parseErrorResp, 0, len(errs)),
	}
	for _, e := range errs {
		resp.ParseErrors = append(resp.ParseErrors, parseErrorResp{
			Row: e.Row + 1, Column: e.Column, Value: e.Value, Error: e.Err.Error(),
		})
	}
	return resp
}

type sheetsResp struct {
	Source string   `json:"source"`
	Sheets []string `json:"sheets"`
	Sheet  string   `json:"sheet"`
}

type viewResp struct {
	AsOf     response.Date `json:"as_of"`
	Total    int           `json:"total"`
	Filtered int           `json:"filtered"`
	Stats    statsResp     `json:"stats"`
}

func newViewResp(v dashboard.View) viewResp {
	return viewResp{AsOf: response.Date(v.AsOf), Total: v.Total, Filtered: v.Filtered, Stats: newStatsResp(v.Stats)}
}

type taskResp struct {
	ID              string        `json:"id"`
	IDSource        string        `json:"id_source"`
	Row             int           `json:"row"`
	Project         string        `json:"project"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	StatusText      string        `json:"status_text"`
	Start           response.Date `json:"start"`
	Finish          response.Date `json:"finish"`
	Completion      float64       `json:"completion"`
	Weight          float64       `json:"weight"`
	Area            string        `json:"area,omitempty"`
	Resource        string        `json:"resource,omitempty"`
	Level           int           `json:"level"`
	Milestone       bool          `json:"milestone"`
	PlannedProgress float64       `json:"planned_progress"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		IDSource:        string(t.IDSource),
		Row:             t.Row + 1,
		Project:         t.Project,
		Description:     t.Description,
		Status:          string(t.Status),
		StatusText:      t.StatusText,
		Start:           response.Date(t.Start),
		Finish:          response.Date(t.Finish),
		Completion:      t.Completion,
		Weight:          t.Weight,
		Area:            t.Area,
		Resource:        t.Resource,
		Level:           t.Level,
		Milestone:       t.Milestone,
		PlannedProgress: round2(t.PlannedProgress),
	}
}

type projectResp struct {
	Project          string         `json:"project"`
	Tasks            int            `json:"tasks"`
	StatusCounts     map[string]int `json:"status_counts"`
	WeightedProgress float64        `json:"weighted_progress"`
	PlannedProgress  float64        `json:"planned_progress"`
	TotalWeight      float64        `json:"total_weight"`
}

type overviewResp struct {
	viewResp
	StatusCounts       map[string]int `json:"status_counts"`
	WeightedProgress   float64        `json:"weighted_progress"`
	PlannedProgress    float64        `json:"planned_progress"`
	Upcoming           int            `json:"upcoming_deadlines"`
	UpcomingWindowDays int            `json:"upcoming_window_days"`
	Late               int            `json:"late_tasks"`
	SPI                float64        `json:"spi"`
	Projects           []projectResp  `json:"projects"`
}

func statusCounts(m map[model.Status]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func (h *handler) newOverviewResp(out dashboard.OverviewOutput) overviewResp {
	resp := overviewResp{
		viewResp:           newViewResp(out.View),
		StatusCounts:       statusCounts(out.StatusCounts),
		WeightedProgress:   round2(out.WeightedProgress),
		PlannedProgress:    round2(out.PlannedProgress),
		Upcoming:           out.Upcoming,
		UpcomingWindowDays: out.UpcomingWindowDays,
		Late:               out.Late,
		SPI:                round2(out.SPI),
		Projects:           make([]projectResp, 0, len(out.Projects)),
	}
	for _, p := range out.Projects {
		resp.Projects = append(resp.Projects, newProjectResp(p))
	}
	return resp
}

func newProjectResp(p metric.ProjectSummary) projectResp {
	return projectResp{
		Project:          p.Project,
		Tasks:            p.Tasks,
		StatusCounts:     statusCounts(p.StatusCounts),
		WeightedProgress: round2(p.WeightedProgress),
		PlannedProgress:  round2(p.PlannedProgress),
		TotalWeight:      p.TotalWeight,
	}
}

type filtersResp struct {
	Column   string   `json:"column,omitempty"`
	Values   []string `json:"values"`
	Projects []string `json:"projects"`
}

type sampleResp struct {
	Period response.Date `json:"period"`
	Series string        `json:"series"`
	Value  float64       `json:"value"`
}

type scurveResp struct {
	viewResp
	Samples   []sampleResp  `json:"samples"`
	SPI       float64       `json:"spi"`
	SPIPeriod response.Date `json:"spi_period"`
	Tasks     int           `json:"tasks"`
}

func (h *handler) newSCurveResp(out dashboard.SCurveOutput) scurveResp {
	resp := scurveResp{
		viewResp:  newViewResp(out.View),
		Samples:   make([]sampleResp, 0, 2*len(out.Curve.Periods)),
		SPI:       round2(out.Curve.SPI),
		SPIPeriod: response.Date(out.Curve.SPIPeriod),
		Tasks:     out.Curve.Tasks,
	}
	for _, s := range out.Curve.Samples() {
		resp.Samples = append(resp.Samples, sampleResp{Period: response.Date(s.Period), Series: string(s.Series), Value: round2(s.Value)})
	}
	return resp
}

type zoneResp struct {
	Zone     string  `json:"zone"`
	Progress float64 `json:"progress"`
	Tasks    int     `json:"tasks"`
	Fill     string  `json:"fill"`
}

type zonesResp struct {
	viewResp
	Mode    string     `json:"mode"`
	Zones   []zoneResp `json:"zones"`
	Skipped int        `json:"skipped"`
}

func (h *handler) newZonesResp(out dashboard.ZonesOutput) zonesResp {
	resp := zonesResp{
		viewResp: newViewResp(out.View),
		Mode:     out.Result.Mode,
		Zones:    make([]zoneResp, 0, len(out.Result.Zones)),
		Skipped:  out.Result.Skipped,
	}
	for _, z := range out.Result.Zones {
		p := out.Result.Progress[z]
		resp.Zones = append(resp.Zones, zoneResp{
			Zone:     z,
			Progress: round2(p),
			Tasks:    out.Result.Counts[z],
			Fill:     zone.MapFill(p).String(),
		})
	}
	return resp
}

type lateTaskResp struct {
	taskResp
	LateDays int `json:"late_days"`
}

type lateResp struct {
	viewResp
	Tasks []lateTaskResp `json:"tasks"`
}

func (h *handler) newLateResp(out dashboard.LateOutput) lateResp {
	resp := lateResp{viewResp: newViewResp(out.View), Tasks: make([]lateTaskResp, 0, len(out.Tasks))}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, lateTaskResp{taskResp: newTaskResp(t.Task), LateDays: t.LateDays})
	}
	return resp
}

type rankedTaskResp struct {
	taskResp
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

type priorityResp struct {
	viewResp
	Tasks []rankedTaskResp `json:"tasks"`
}

func (h *handler) newPriorityResp(out dashboard.PriorityOutput) priorityResp {
	resp := priorityResp{viewResp: newViewResp(out.View), Tasks: make([]rankedTaskResp, 0, len(out.Tasks))}
	for i, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, rankedTaskResp{taskResp: newTaskResp(t.Task), Rank: i + 1, Score: round2(t.Score)})
	}
	return resp
}

type ganttRowResp struct {
	taskResp
	Color           string `json:"color,omitempty"`
	PredecessorID   string `json:"predecessor_id,omitempty"`
	PredecessorKind string `json:"predecessor_kind,omitempty"`
}

type ganttResp struct {
	viewResp
	Rows []ganttRowResp `json:"rows"`
}

func (h *handler) newGanttResp(out dashboard.GanttOutput) ganttResp {
	resp := ganttResp{viewResp: newViewResp(out.View), Rows: make([]ganttRowResp, 0, len(out.Rows))}
	for _, r := range out.Rows {
		resp.Rows = append(resp.Rows, ganttRowResp{
			taskResp:        newTaskResp(r.Task),
			Color:           r.Color,
			PredecessorID:   r.PredecessorID,
			PredecessorKind: string(r.PredecessorKind),
		})
	}
	return resp
}

type contractRowResp struct {
	taskResp
	DurationDays int     `json:"duration_days"`
	TimeElapsed  float64 `json:"time_elapsed"`
	Bucket       string  `json:"bucket"`
}

type bucketResp struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type durationResp struct {
	Count int     `json:"count"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Avg   float64 `json:"avg"`
}

type contractsResp struct {
	viewResp
	Rows     []contractRowResp `json:"rows"`
	Buckets  []bucketResp      `json:"buckets"`
	Duration durationResp      `json:"duration"`
	Excluded int               `json:"excluded"`
}

func (h *handler) newContractsResp(out dashboard.ContractsOutput) contractsResp {
	s := out.Summary
	resp := contractsResp{
		viewResp: newViewResp(out.View),
		Rows:     make([]contractRowResp, 0, len(s.Rows)),
		Duration: durationResp{Count: s.Duration.Count, Min: s.Duration.Min, Max: s.Duration.Max, Avg: round2(s.Duration.Avg)},
		Excluded: s.Excluded,
	}
	for _, r := range s.Rows {
		resp.Rows = append(resp.Rows, contractRowResp{
			taskResp:     newTaskResp(r.Task),
			DurationDays: r.DurationDays,
			TimeElapsed:  round2(r.TimeElapsed),
			Bucket:       r.Bucket,
		})
	}
	for _, b := range metric.ElapsedBuckets() {
		resp.Buckets = append(resp.Buckets, bucketResp{Bucket: b, Count: s.Buckets[b]})
	}
	return resp
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
