package gsheets

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenFile is where scripts/gsheets-auth stores the OAuth token.
const TokenFile = "token.json"

// ReadTableRequest is the input for reading one spreadsheet tab.
type ReadTableRequest struct {
	SpreadsheetID string
	SheetName     string // empty selects the first tab
	SkipRows      int
}

// quoteSheetName builds an A1 range covering the whole tab.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// cellString renders an unformatted API value the way a spreadsheet cell reads.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}
