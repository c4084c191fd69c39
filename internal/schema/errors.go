package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColumn is returned when a filter or lookup names a header the table lacks.
var ErrUnknownColumn = errors.New("unknown column")

// SchemaError aborts a load: required columns are missing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// FieldParseError records a cell that could not be parsed. The load continues
// with the value treated as missing.
type FieldParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e FieldParseError) Error() string {
	return fmt.Sprintf("row %d column %s: cannot parse %q: %v", e.Row+1, e.Column, e.Value, e.Err)
}

func (e FieldParseError) Unwrap() error {
	return e.Err
}
