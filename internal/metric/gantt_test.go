package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-monitor/internal/metric"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/sheet"
)

func TestGanttRows(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	raw := sheet.Table{
		Headers: []string{"KONTRAK", "JENIS PEKERJAAN", "STATUS", "START", "FINISH", "% COMPLETE", "BOBOT"},
		Rows: [][]string{
			{"P1", "second", "TUNDA", "2024-01-10", "2024-01-20", "0", "1"},
			{"P1", "first", "SELESAI", "2024-01-01", "2024-01-05", "1", "1"},
			{"P1", "undated", "SELESAI", "", "", "1", "1"},
			{"P1", "odd", "BATAL", "2024-01-15", "2024-01-16", "0", "1"},
		},
	}
	tbl, err := schema.NewLoader(p).Load(raw, day(2024, 1, 1))
	require.NoError(t, err)

	rows := metric.GanttRows(tbl)
	require.Len(t, rows, 3)
	assert.Equal(t, "FIRST", rows[0].Task.Description)
	assert.Equal(t, "green", rows[0].Color)
	assert.Empty(t, rows[0].PredecessorID)

	assert.Equal(t, "SECOND", rows[1].Task.Description)
	assert.Equal(t, "red", rows[1].Color)
	assert.Equal(t, rows[0].Task.ID, rows[1].PredecessorID)
	assert.Equal(t, model.DependencyInferred, rows[1].PredecessorKind)

	assert.Empty(t, rows[2].Color, "unknown status has no color")

	filtered, err := tbl.Filter(schema.Filter{Column: "STATUS", Value: "tunda"})
	require.NoError(t, err)
	rows = metric.GanttRows(filtered)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].PredecessorID, "predecessor filtered out of the table")
}
