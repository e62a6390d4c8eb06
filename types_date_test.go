package equate

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d != NewDate(2025, time.March, 10) {
		t.Errorf("ParseDate() = %v want 2025-03-10", d)
	}

	// The read format is permissive about single-digit month/day.
	if D("2025-3-7") != NewDate(2025, time.March, 7) {
		t.Errorf("ParseDate(2025-3-7) = %v want 2025-03-07", D("2025-3-7"))
	}

	if _, err := ParseDate("10-03-2025"); err == nil {
		t.Errorf("ParseDate(10-03-2025) expected an error")
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := D("2025-03-07"), D("2025-03-10")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is not a strict order for %v and %v", a, b)
	}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare() inconsistent for %v and %v", a, b)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2025-03-07", "2025-03-10", 3},
		{"2025-03-10", "2025-03-07", 3}, // absolute
		{"2025-03-10", "2025-03-10", 0},
		{"2025-02-27", "2025-03-02", 3}, // month boundary, non leap year
	}
	for _, tc := range tests {
		if got := DaysBetween(D(tc.a), D(tc.b)); got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDateAddNormalizes(t *testing.T) {
	if got := D("2025-03-31").Add(1); got != D("2025-04-01") {
		t.Errorf("Add(1) = %v want 2025-04-01", got)
	}
}
