package schema

import (
	"time"

	"project-monitor/internal/model"
	"project-monitor/pkg/sheet"
)

// EnrichedTable is the result of a load: the source table with trimmed headers
// plus one normalized Task per data row. It is never mutated after Load;
// filtering produces a new value sharing the same source.
type EnrichedTable struct {
	Source      sheet.Table
	Columns     map[string]int // canonical column -> header index
	Tasks       []model.Task
	ParseErrors []FieldParseError
	AsOf        time.Time

	byID map[string]int
}

// Stats are the row-count deltas a caller reports to the end user.
type Stats struct {
	Rows        int `json:"rows"`
	Dated       int `json:"dated"`   // rows usable by date computations
	Undated     int `json:"undated"` // rows excluded from date computations
	Weighted    int `json:"weighted"`
	ParseErrors int `json:"parse_errors"`
}

// Filter narrows a table by project and by one column=value pair. Comparison
// is equality after text normalization. Empty fields do not filter.
type Filter struct {
	Project string
	Column  string
	Value   string
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.Project == "" && (f.Column == "" || f.Value == "")
}
