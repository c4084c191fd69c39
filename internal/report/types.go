package report

import (
	"errors"
	"time"

	"project-monitor/pkg/sheet"
)

// Kind selects a report variant.
type Kind string

const (
	// KindTable is every row with all source columns plus derived columns.
	KindTable Kind = "table"
	// KindStatus is the current status of every row.
	KindStatus Kind = "status"
	// KindLate lists overdue, unfinished rows.
	KindLate Kind = "late"
	// KindPriority lists rows by descending priority score.
	KindPriority Kind = "priority"
)

// Kinds lists the supported variants.
func Kinds() []Kind {
	return []Kind{KindTable, KindStatus, KindLate, KindPriority}
}

var ErrUnknownKind = errors.New("unknown report kind")

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// Derived column headers. They are deliberately not aliases of loader columns,
// so reloading an export infers the same values again.
const (
	ColTaskUID         = "TASK UID"
	ColWBSLevel        = "WBS LEVEL"
	ColIsMilestone     = "IS MILESTONE"
	ColPredecessorID   = "PREDECESSOR ID"
	ColPredecessorKind = "PREDECESSOR KIND"
	ColDurationDays    = "DURATION DAYS"
	ColPlanned         = "PLANNED %"
	ColStatusCode      = "STATUS CODE"
	ColLateDays        = "LATE DAYS"
	ColPriorityScore   = "PRIORITY SCORE"
	ColRank            = "RANK"
)

// Options parameterize a report.
type Options struct {
	AsOf  time.Time
	Limit int // priority only; <= 0 means all rows
}

// File is an encoded report.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Report is a built report before encoding.
type Report struct {
	Kind  Kind
	AsOf  time.Time
	Table sheet.Table
}
