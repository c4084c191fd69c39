package sheet

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies a file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned when neither extension nor content identifies the encoding.
var ErrUnknownFormat = errors.New("unknown file format")

// zip local file header; every XLSX file starts with it.
var zipMagic = []byte("PK\x03\x04")

// DetectFormat chooses the codec from the file extension, falling back to content sniffing.
func DetectFormat(fileName string, head []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}
	if bytes.HasPrefix(head, zipMagic) {
		return FormatXLSX, nil
	}
	if len(head) > 0 && bytes.IndexByte(head, 0) == -1 {
		return FormatCSV, nil
	}
	return "", ErrUnknownFormat
}

// ParseFormat validates a format name; empty selects CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", ErrUnknownFormat
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Decode reads data in the given format. name is used as the sheet name for CSV.
func Decode(format Format, name string, data []byte, opt ReadOptions) (Workbook, error) {
	switch format {
	case FormatXLSX:
		return ReadXLSX(bytes.NewReader(data), opt)
	case FormatCSV:
		return ReadCSV(bytes.NewReader(data), name, opt)
	}
	return Workbook{}, ErrUnknownFormat
}

// Encode writes t in the given format.
func Encode(w io.Writer, format Format, t Table) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, t)
	case FormatCSV:
		return WriteCSV(w, t)
	}
	return ErrUnknownFormat
}
