package domain

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-06-15" {
		t.Fatalf("round trip mismatch: %s", d.String())
	}

	if _, err := ParseDate("15/06/2025"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := ParseDate(""); !IsValidation(err) {
		t.Fatalf("expected validation error for empty input, got %v", err)
	}
}

func TestDaysUntil(t *testing.T) {
	checkIn := NewDate(2025, time.June, 10)
	checkOut := NewDate(2025, time.June, 13)

	if got := checkIn.DaysUntil(checkOut); got != 3 {
		t.Fatalf("expected 3 nights, got %d", got)
	}
	if got := checkOut.DaysUntil(checkIn); got != -3 {
		t.Fatalf("expected -3 going backwards, got %d", got)
	}
	if got := checkIn.DaysUntil(checkIn); got != 0 {
		t.Fatalf("expected 0 for same day, got %d", got)
	}
}

func TestDayBounds(t *testing.T) {
	d := NewDate(2025, time.June, 10)
	if got := d.StartOfDay(); !got.Equal(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day: %v", got)
	}
	if got := d.EndOfDay(); !got.Equal(time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("unexpected end of day: %v", got)
	}
}

func TestOverlaps(t *testing.T) {
	day := func(d int) Date { return NewDate(2025, time.June, d) }

	cases := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{"disjoint", 1, 3, 5, 7, false},
		{"partial overlap", 1, 5, 4, 8, true},
		{"contained", 2, 9, 4, 6, true},
		{"identical", 3, 6, 3, 6, true},
		{"back to back, a before b", 1, 4, 4, 6, false},
		{"back to back, b before a", 4, 6, 1, 4, false},
	}
	for _, tc := range cases {
		got := Overlaps(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
		if got != tc.want {
			t.Fatalf("%s: got %t want %t", tc.name, got, tc.want)
		}
	}
}
