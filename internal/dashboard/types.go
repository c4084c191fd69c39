package dashboard

import (
	"time"

	"project-monitor/internal/curve"
	"project-monitor/internal/metric"
	"project-monitor/internal/model"
	"project-monitor/internal/report"
	"project-monitor/internal/schema"
	"project-monitor/internal/zone"
	"project-monitor/pkg/sheet"
)

// --- Session Model ---

// Session is everything one browser session has loaded. The enriched table is
// replaced on every load and never mutated.
type Session struct {
	ID       string
	UserID   string
	Source   string // uploaded file name or spreadsheet id
	Workbook sheet.Workbook
	Sheet    string
	Table    schema.EnrichedTable
	LoadedAt time.Time
}

// --- UseCase Inputs ---

type UploadInput struct {
	FileName string
	Data     []byte
	Sheet    string
	SkipRows *int
}

type ImportInput struct {
	SpreadsheetID string
	Sheet         string
	SkipRows      *int
}

type SelectSheetInput struct {
	Sheet string
}

// QueryInput is shared by every view: an optional filter and an optional
// "as of" expression (ISO date or relative, e.g. "yesterday").
type QueryInput struct {
	Filter schema.Filter
	AsOf   string
}

type FiltersInput struct {
	Column string
}

type PriorityInput struct {
	QueryInput
	Limit int
}

type ExportInput struct {
	QueryInput
	Kind   report.Kind
	Format sheet.Format
	Limit  int
}

// --- UseCase Outputs ---

type LoadOutput struct {
	SessionID   string
	Source      string
	Sheets      []string
	Sheet       string
	Columns     []string
	Stats       schema.Stats
	ParseErrors []schema.FieldParseError
}

type SheetsOutput struct {
	Source string
	Sheets []string
	Sheet  string
}

// View is the table slice a view was computed on.
type View struct {
	AsOf     time.Time
	Total    int // rows in the session table
	Filtered int // rows after the filter
	Stats    schema.Stats
}

type OverviewOutput struct {
	View
	StatusCounts       map[model.Status]int
	WeightedProgress   float64
	PlannedProgress    float64
	Upcoming           int
	UpcomingWindowDays int
	Late               int
	SPI                float64
	Projects           []metric.ProjectSummary
}

type FiltersOutput struct {
	Column   string
	Values   []string
	Projects []string
}

type SCurveOutput struct {
	View
	Curve curve.Curve
}

type ZonesOutput struct {
	View
	Result zone.Result
}

type LateOutput struct {
	View
	Tasks []metric.LateTask
}

type PriorityOutput struct {
	View
	Tasks []metric.RankedTask
}

type GanttOutput struct {
	View
	Rows []metric.GanttRow
}

type ContractsOutput struct {
	View
	Summary metric.ContractSummary
}

type ExportOutput struct {
	File report.File
	Rows int
}
