package model

import (
	"time"

	"project-monitor/pkg/datemath"
)

// Provenance tells whether a value came from the uploaded sheet or was derived.
type Provenance string

const (
	ProvenanceExplicit Provenance = "explicit"
	ProvenanceInferred Provenance = "inferred"
)

// Task is one row of tracked work after load-time normalization.
// A zero Start or Finish means the cell was missing or unparseable.
type Task struct {
	Row int // index into the source table's data rows

	ID       string
	IDSource Provenance

	Project     string
	Description string
	Status      Status
	StatusText  string // normalized source text, kept for unknown statuses

	Start  time.Time
	Finish time.Time

	Completion float64 // 0-100 after rescaling; not clamped
	Weight     float64 // 0 when missing

	Area     string
	Resource string
	SubArea  string

	Level       int
	LevelSource Provenance

	Milestone       bool
	MilestoneSource Provenance

	Predecessor *Dependency

	// PlannedProgress is the planned percentage at load time.
	PlannedProgress float64
}

// HasSchedule reports whether both schedule dates are present.
func (t Task) HasSchedule() bool {
	return !t.Start.IsZero() && !t.Finish.IsZero()
}

// DurationDays returns Finish - Start in calendar days; ok is false without a
// schedule. Negative durations are returned as-is.
func (t Task) DurationDays() (days int, ok bool) {
	if !t.HasSchedule() {
		return 0, false
	}
	return datemath.DaysBetween(t.Start, t.Finish), true
}
