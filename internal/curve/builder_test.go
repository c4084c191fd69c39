package curve_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-monitor/internal/curve"
	"project-monitor/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSingleTask(t *testing.T) {
	tasks := []model.Task{{Start: day(2024, 1, 1), Finish: day(2024, 1, 29), Weight: 1, Completion: 50}}
	c := curve.Build(tasks, day(2024, 1, 15), curve.Options{})

	require.Len(t, c.Periods, 5)
	assert.Equal(t, day(2024, 1, 29), c.Periods[4])
	assertSeries(t, []float64{0, 25, 50, 75, 100}, c.Planned)
	assertSeries(t, []float64{0, 25, 50, 50, 50}, c.Actual)

	assert.Equal(t, 1.0, c.SPI, "actual equals planned on the as-of period")
	assert.Equal(t, day(2024, 1, 15), c.SPIPeriod)
	assert.Equal(t, 1, c.Tasks)

	samples := c.Samples()
	require.Len(t, samples, 10)
	assert.Equal(t, curve.SeriesPlanned, samples[2].Series)
	assert.Equal(t, curve.SeriesActual, samples[3].Series)
	assert.Equal(t, c.Periods[1], samples[3].Period)
}

func TestBuildShortLastPeriod(t *testing.T) {
	tasks := []model.Task{{Start: day(2024, 1, 1), Finish: day(2024, 1, 10), Weight: 1}}
	c := curve.Build(tasks, day(2024, 1, 1), curve.Options{StepDays: 7})
	assert.Equal(t, []time.Time{day(2024, 1, 1), day(2024, 1, 8)}, c.Periods, "no boundary past the span end")
}

func TestBuildExcludesUnweightedAndUndated(t *testing.T) {
	tasks := []model.Task{
		{Start: day(2024, 1, 1), Finish: day(2024, 1, 8), Weight: 2, Completion: 100},
		{Start: day(2024, 1, 1), Finish: day(2024, 1, 15), Weight: 0, Completion: 0},
		{Start: day(2024, 1, 1), Weight: 5, Completion: 0},
		{Start: day(2024, 1, 1), Finish: day(2024, 1, 8), Weight: -1, Completion: 0},
	}
	c := curve.Build(tasks, day(2024, 1, 15), curve.Options{})

	assert.Equal(t, 1, c.Tasks)
	require.Len(t, c.Periods, 3, "zero-weight tasks still widen the span")
	assertSeries(t, []float64{0, 100, 100}, c.Planned)
	assertSeries(t, []float64{0, 50, 100}, c.Actual)
}

func TestBuildZeroWeight(t *testing.T) {
	tasks := []model.Task{{Start: day(2024, 1, 1), Finish: day(2024, 1, 15), Completion: 80}}
	c := curve.Build(tasks, day(2024, 1, 15), curve.Options{})
	require.False(t, c.Empty())
	assertSeries(t, []float64{0, 0, 0}, c.Planned)
	assertSeries(t, []float64{0, 0, 0}, c.Actual)
	assert.Zero(t, c.SPI)
}

func TestBuildEmpty(t *testing.T) {
	c := curve.Build([]model.Task{{Weight: 1}}, day(2024, 1, 1), curve.Options{})
	assert.True(t, c.Empty())
	assert.Empty(t, c.Samples())
	assert.Zero(t, c.SPI)
}

func TestSPIZero(t *testing.T) {
	tasks := []model.Task{{Start: day(2024, 1, 1), Finish: day(2024, 1, 29), Weight: 1, Completion: 30}}

	c := curve.Build(tasks, day(2024, 1, 1), curve.Options{})
	assert.Zero(t, c.SPI, "planned is 0 on the first period")
	assert.Equal(t, day(2024, 1, 1), c.SPIPeriod)

	c = curve.Build(tasks, day(2023, 12, 1), curve.Options{})
	assert.Zero(t, c.SPI, "no period on or before as-of")
	assert.True(t, c.SPIPeriod.IsZero())
}

func TestSPIUsesLatestPeriodBeforeAsOf(t *testing.T) {
	tasks := []model.Task{{Start: day(2024, 1, 1), Finish: day(2024, 1, 29), Weight: 1, Completion: 40}}
	c := curve.Build(tasks, day(2024, 1, 18), curve.Options{})
	assert.Equal(t, day(2024, 1, 15), c.SPIPeriod)
	assert.InDelta(t, c.Actual[2]/c.Planned[2], c.SPI, 1e-12)
}

func TestBuildMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := day(2024, 1, 1)
	for run := 0; run < 50; run++ {
		var tasks []model.Task
		for i := 0; i < 20; i++ {
			start := base.AddDate(0, 0, rng.Intn(120))
			tasks = append(tasks, model.Task{
				Start:      start,
				Finish:     start.AddDate(0, 0, rng.Intn(90)-10),
				Weight:     float64(rng.Intn(5)),
				Completion: float64(rng.Intn(160) - 20),
			})
		}
		asOf := base.AddDate(0, 0, rng.Intn(200))
		c := curve.Build(tasks, asOf, curve.Options{StepDays: 1 + rng.Intn(10)})
		for i := 1; i < len(c.Periods); i++ {
			assert.GreaterOrEqual(t, c.Planned[i], c.Planned[i-1])
			assert.GreaterOrEqual(t, c.Actual[i], c.Actual[i-1])
			assert.LessOrEqual(t, c.Planned[i], 100.0+1e-9)
			assert.LessOrEqual(t, c.Actual[i], 100.0+1e-9)
		}
	}
}

func assertSeries(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "period %d", i)
	}
}
