package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a delimited stream into a one-table workbook named name.
// Ragged rows are tolerated.
func ReadCSV(r io.Reader, name string, opt ReadOptions) (Workbook, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Workbook{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) > 0 {
		records[0] = stripBOM(records[0])
	}

	return Workbook{
		Names:  []string{name},
		Tables: map[string]Table{name: NewTable(name, records, opt)},
	}, nil
}

// WriteCSV encodes a table with a header line.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// EncodeCSV is WriteCSV into a byte slice.
func EncodeCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stripBOM(rec []string) []string {
	if len(rec) > 0 {
		rec[0] = string(bytes.TrimPrefix([]byte(rec[0]), []byte("\ufeff")))
	}
	return rec
}
