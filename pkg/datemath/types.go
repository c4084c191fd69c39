package datemath

import "time"

// Span is a closed interval of days.
type Span struct {
	Start time.Time
	End   time.Time
}

// Days returns the length of the span in calendar days.
func (s Span) Days() int {
	return DaysBetween(s.Start, s.End)
}

// Contains reports whether t falls inside the span, bounds included.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}
