package datemath

import "time"

// DateLayout is the canonical day format used for exports and JSON.
const DateLayout = "2006-01-02"

// DaysBetween returns the number of calendar days from a to b, each taken in its
// own location. Daylight-saving shifts do not produce fractional days.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// Fraction returns how far t lies between from and to as elapsed/total time.
// Callers guard against a zero-length interval.
func Fraction(from, to, t time.Time) float64 {
	return float64(t.Sub(from)) / float64(to.Sub(from))
}

// Format renders a day as DateLayout; the zero time renders as "".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
