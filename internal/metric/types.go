package metric

import "project-monitor/internal/model"

// NeutralPriority is the score given to a task that cannot be scored.
const NeutralPriority = 50.0

// Priority blend.
const (
	deadlineShare   = 0.4
	weightShare     = 0.3
	statusShare     = 0.2
	incompleteShare = 0.1

	weightScale = 10.0
)

// statusUrgency is the status factor of the priority score.
var statusUrgency = map[model.Status]float64{
	model.StatusDelayed:    80,
	model.StatusInProgress: 60,
	model.StatusNotStarted: 40,
	model.StatusCompleted:  0,
}

const unknownStatusUrgency = 30.0

// LateTask is a task past its planned end that is not completed.
type LateTask struct {
	Task     model.Task
	LateDays int
}

// RankedTask pairs a task with its priority score.
type RankedTask struct {
	Task  model.Task
	Score float64
}

// ProjectSummary aggregates one project's tasks.
type ProjectSummary struct {
	Project          string
	Tasks            int
	StatusCounts     map[model.Status]int
	WeightedProgress float64
	PlannedProgress  float64
	TotalWeight      float64
}

// Elapsed bucket labels of the contract summary.
const (
	BucketUnder30 = "<30%"
	Bucket30To50  = "30-50%"
	Bucket50To80  = "50-80%"
	BucketOver80  = ">80%"
)

// ElapsedBuckets lists bucket labels in ascending order.
func ElapsedBuckets() []string {
	return []string{BucketUnder30, Bucket30To50, Bucket50To80, BucketOver80}
}

// ContractRow is one task of the contract summary.
type ContractRow struct {
	Task         model.Task
	DurationDays int
	TimeElapsed  float64 // percent of planned duration elapsed at asOf, 0-100
	Bucket       string
}

// DurationStats summarizes planned durations in days.
type DurationStats struct {
	Count int
	Min   int
	Max   int
	Avg   float64
}

// ContractSummary is the time-elapsed view across contracts.
type ContractSummary struct {
	Rows     []ContractRow
	Buckets  map[string]int
	Duration DurationStats
	Excluded int // rows without valid, ordered dates
}

// GanttRow is one bar of the timeline chart.
type GanttRow struct {
	Task            model.Task
	Color           string
	PredecessorID   string
	PredecessorKind model.DependencyKind
}
