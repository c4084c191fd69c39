package curve

import "time"

// Series identifies one line of the S-curve.
type Series string

const (
	SeriesPlanned Series = "PLANNED"
	SeriesActual  Series = "ACTUAL"
)

// DefaultStepDays is the period length of the curve.
const DefaultStepDays = 7

// Options tune curve construction.
type Options struct {
	StepDays int
}

// Sample is the cumulative progress of one series at one period boundary.
type Sample struct {
	Period time.Time
	Series Series
	Value  float64
}

// Curve holds both series over the same period boundaries. Each series is
// non-decreasing: raw per-period values are smoothed with a running maximum.
type Curve struct {
	Periods []time.Time
	Planned []float64
	Actual  []float64

	// SPI is Actual/Planned at SPIPeriod, the latest period on or before the
	// as-of day. It is 0 when planned progress there is 0 or no period qualifies.
	SPI       float64
	SPIPeriod time.Time

	// Tasks counts the tasks that contributed (dated, positive weight).
	Tasks int
}

// Samples flattens the curve into one record per period and series, planned first.
func (c Curve) Samples() []Sample {
	out := make([]Sample, 0, 2*len(c.Periods))
	for i, p := range c.Periods {
		out = append(out,
			Sample{Period: p, Series: SeriesPlanned, Value: c.Planned[i]},
			Sample{Period: p, Series: SeriesActual, Value: c.Actual[i]},
		)
	}
	return out
}

// Empty reports whether the curve has no periods.
func (c Curve) Empty() bool {
	return len(c.Periods) == 0
}
