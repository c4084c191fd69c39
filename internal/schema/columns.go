package schema

import "project-monitor/pkg/textnorm"

// Canonical column names. Headers are matched after trim and text normalization.
const (
	ColProject     = "KONTRAK"
	ColDescription = "JENIS PEKERJAAN"
	ColStatus      = "STATUS"
	ColStart       = "START"
	ColFinish      = "FINISH"
	ColCompletion  = "% COMPLETE"
	ColWeight      = "BOBOT"

	ColArea        = "AREA PEKERJAAN"
	ColResource    = "RESOURCE"
	ColSubArea     = "SUB AREA"
	ColTaskID      = "TASK ID"
	ColLevel       = "LEVEL"
	ColMilestone   = "MILESTONE"
	ColPredecessor = "PREDECESSOR"
)

// RequiredColumns must all be present for a load to succeed.
var RequiredColumns = []string{
	ColProject, ColDescription, ColStatus, ColStart, ColFinish, ColCompletion, ColWeight,
}

// OptionalColumns override inferred values when present.
var OptionalColumns = []string{
	ColArea, ColResource, ColSubArea, ColTaskID, ColLevel, ColMilestone, ColPredecessor,
}

var columnAliases = map[string][]string{
	ColProject:     {"PROJECT", "PROJECT ID", "NO KONTRAK", "KONTRAK ID"},
	ColDescription: {"TASK", "TASK NAME", "DESCRIPTION", "URAIAN PEKERJAAN", "PEKERJAAN"},
	ColStart:       {"START DATE", "TANGGAL MULAI", "MULAI"},
	ColFinish:      {"END", "END DATE", "FINISH DATE", "PLAN FINISH", "PLANNED END", "TANGGAL SELESAI"},
	ColCompletion:  {"%COMPLETE", "COMPLETE", "PROGRESS", "% PROGRESS"},
	ColWeight:      {"WEIGHT"},
	ColArea:        {"AREA", "ZONE", "ZONA"},
	ColResource:    {"RESOURCES", "SUMBER DAYA"},
	ColSubArea:     {"SUB-AREA", "SUBAREA"},
	ColTaskID:      {"TASK_ID", "ID"},
	ColPredecessor: {"PREDECESSORS"},
}

// headerKeys maps every normalized spelling to its canonical column.
var headerKeys = func() map[string]string {
	m := make(map[string]string)
	for _, c := range append(append([]string{}, RequiredColumns...), OptionalColumns...) {
		m[textnorm.Normalize(c)] = c
		for _, alias := range columnAliases[c] {
			m[textnorm.Normalize(alias)] = c
		}
	}
	return m
}()

// Canonical returns the canonical column a header spells, if any.
func Canonical(header string) (string, bool) {
	c, ok := headerKeys[textnorm.Normalize(header)]
	return c, ok
}

// resolveColumns maps canonical names to header positions; the first
// occurrence of a duplicated column wins.
func resolveColumns(headers []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range headers {
		c, ok := Canonical(h)
		if !ok {
			continue
		}
		if _, seen := cols[c]; !seen {
			cols[c] = i
		}
	}
	return cols
}
