package datemath_test

import (
	"testing"
	"time"

	"project-monitor/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Empty means today",
			relative: "",
			want:     startOfBase,
		},
		{
			name:     "ISO date",
			relative: "2024-03-10",
			want:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Unknown expression",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestParseCell(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cell    string
		want    time.Time
		wantErr bool
	}{
		{name: "ISO", cell: "2024-01-15", want: want},
		{name: "ISO with time", cell: "2024-01-15 13:45:00", want: want},
		{name: "RFC3339", cell: "2024-01-15T08:00:00Z", want: want},
		{name: "Day first slash", cell: "15/01/2024", want: want},
		{name: "Day first short", cell: "15/1/2024", want: want},
		{name: "Month name", cell: "15-Jan-2024", want: want},
		{name: "Excel serial", cell: "45306", want: want},
		{name: "Excel serial with time", cell: "45306.75", want: want},
		{name: "Surrounding space", cell: "  2024-01-15 ", want: want},
		{name: "Empty", cell: "", wantErr: true},
		{name: "Garbage", cell: "next tuesday-ish", wantErr: true},
		{name: "Serial out of range", cell: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseCell(tt.cell)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCell(%q) error = %v, wantErr %v", tt.cell, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseCell(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestParseCellLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := parser.ParseCell("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != parser.Location() {
		t.Errorf("expected parser location, got %v", got.Location())
	}
	if got.Hour() != 0 || got.Day() != 15 {
		t.Errorf("expected start of 15th, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{name: "Same day", a: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), b: time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC), want: 0},
		{name: "Nine days", a: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), b: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), want: 9},
		{name: "Negative", a: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), b: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: -9},
		{name: "Leap day", a: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), b: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFractionAndFormat(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 10)
	if got := datemath.Fraction(from, to, from.AddDate(0, 0, 5)); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}
	if got := datemath.Format(from); got != "2024-01-01" {
		t.Errorf("Format() = %q", got)
	}
	if got := datemath.Format(time.Time{}); got != "" {
		t.Errorf("Format(zero) = %q, want empty", got)
	}
}

func TestSpan(t *testing.T) {
	s := datemath.Span{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if s.Days() != 14 {
		t.Errorf("Days() = %d, want 14", s.Days())
	}
	if !s.Contains(s.End) || !s.Contains(s.Start) {
		t.Errorf("expected bounds to be contained")
	}
	if s.Contains(s.End.AddDate(0, 0, 1)) {
		t.Errorf("expected day after end to be outside")
	}
}
