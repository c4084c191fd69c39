// Package sheet holds raw rectangular tables and the XLSX/CSV codecs that move
// them in and out of bytes. It knows nothing about task semantics.
package sheet

import "strings"

// Table is a header row plus data rows. Every row has exactly len(Headers) cells.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Workbook is an ordered set of named tables.
type Workbook struct {
	Names  []string
	Tables map[string]Table
}

// ReadOptions controls header detection.
type ReadOptions struct {
	// SkipRows drops this many leading rows before the header row.
	SkipRows int
}

// Sheet returns the table with the given name, or the first sheet when name is empty.
func (w Workbook) Sheet(name string) (Table, bool) {
	if name == "" {
		if len(w.Names) == 0 {
			return Table{}, false
		}
		name = w.Names[0]
	}
	t, ok := w.Tables[name]
	return t, ok
}

// NewTable builds a Table from raw records: SkipRows leading records are dropped,
// fully blank records are removed, the first remaining record becomes the
// header, and every data row is padded or cut to the header width.
func NewTable(name string, records [][]string, opt ReadOptions) Table {
	t := Table{Name: name}
	if opt.SkipRows >= len(records) {
		return t
	}

	var headerSet bool
	for _, rec := range records[opt.SkipRows:] {
		if isBlank(rec) {
			continue
		}
		if !headerSet {
			t.Headers = trimTrailingBlank(rec)
			headerSet = true
			continue
		}
		t.Rows = append(t.Rows, fit(rec, len(t.Headers)))
	}
	return t
}

// Column returns the index of header h (exact match), or -1.
func (t Table) Column(h string) int {
	for i, name := range t.Headers {
		if name == h {
			return i
		}
	}
	return -1
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimTrailingBlank(rec []string) []string {
	end := len(rec)
	for end > 0 && strings.TrimSpace(rec[end-1]) == "" {
		end--
	}
	out := make([]string, end)
	copy(out, rec[:end])
	return out
}

func fit(rec []string, width int) []string {
	row := make([]string, width)
	copy(row, rec)
	return row
}
