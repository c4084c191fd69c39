package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-monitor/internal/schema"
	"project-monitor/pkg/sheet"
)

func loadFilterFixture(t *testing.T) schema.EnrichedTable {
	t.Helper()
	raw := sheet.Table{
		Headers: []string{"KONTRAK", "JENIS PEKERJAAN", "STATUS", "START", "FINISH", "% COMPLETE", "BOBOT", "AREA PEKERJAAN", "Resource"},
		Rows: [][]string{
			{"P1", "a", "SELESAI", "2024-01-01", "2024-01-02", "1", "1", "Block-1C", "Tim A"},
			{"P1", "b", "TUNDA", "2024-01-03", "2024-01-04", "0", "1", "Pond Area", "tim a"},
			{"P2", "c", "TUNDA", "2024-01-05", "2024-01-06", "0", "1", "block-1c", "Tim B"},
			{"P2", "d", "TUNDA", "2024-01-07", "2024-01-08", "0", "1", "", ""},
		},
	}
	tbl, err := newLoader(t).Load(raw, day(2024, 1, 1))
	require.NoError(t, err)
	return tbl
}

func TestFilter(t *testing.T) {
	tbl := loadFilterFixture(t)

	got, err := tbl.Filter(schema.Filter{Project: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.Equal(t, 4, tbl.Len(), "filter never mutates the source table")

	got, err = tbl.Filter(schema.Filter{Column: "resource", Value: "TIM A"})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	got, err = tbl.Filter(schema.Filter{Project: "P2", Column: "Area", Value: "BLOCK-1C"})
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "C", got.Tasks[0].Description)

	_, ok := got.TaskByID(tbl.Tasks[0].ID)
	assert.False(t, ok, "lookups only see surviving tasks")

	_, err = tbl.Filter(schema.Filter{Column: "NOPE", Value: "x"})
	assert.True(t, errors.Is(err, schema.ErrUnknownColumn))

	got, err = tbl.Filter(schema.Filter{Column: "NOPE"})
	require.NoError(t, err, "a column without a value does not filter")
	assert.Equal(t, 4, got.Len())
}

func TestUniqueValues(t *testing.T) {
	tbl := loadFilterFixture(t)

	values, err := tbl.UniqueValues("AREA PEKERJAAN")
	require.NoError(t, err)
	assert.Equal(t, []string{"BLOCK-1C", "POND AREA"}, values)

	values, err = tbl.UniqueValues("resource")
	require.NoError(t, err)
	assert.Equal(t, []string{"TIM A", "TIM B"}, values)

	assert.Equal(t, []string{"P1", "P2"}, tbl.Projects())

	_, err = tbl.UniqueValues("missing")
	assert.Error(t, err)
}
