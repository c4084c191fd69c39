package report

import (
	"bytes"
	"fmt"

	"project-monitor/pkg/datemath"
	"project-monitor/pkg/sheet"
)

// Encode serializes a report as CSV or XLSX.
func Encode(r Report, format sheet.Format) (File, error) {
	var buf bytes.Buffer
	if err := sheet.Encode(&buf, format, r.Table); err != nil {
		return File{}, fmt.Errorf("encode %s report: %w", r.Kind, err)
	}
	return File{
		Name:        FileName(r, format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// FileName is the download name of a report, e.g. "late-2024-03-10.csv".
func FileName(r Report, format sheet.Format) string {
	name := string(r.Kind)
	if d := datemath.Format(r.AsOf); d != "" {
		name += "-" + d
	}
	return name + "." + string(format)
}
