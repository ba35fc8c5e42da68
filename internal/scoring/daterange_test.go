// ABOUTME: Tests for date range generation.
// ABOUTME: Verifies length, ordering, distinctness, and gap-free coverage.
package scoring

import (
	"testing"
	"time"
)

var testToday = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func TestDateRangeLength(t *testing.T) {
	for n := 1; n <= 365; n++ {
		if got := len(DateRange(testToday, n)); got != n {
			t.Fatalf("DateRange(%d) has length %d", n, got)
		}
	}
}

func TestDateRangeOrdering(t *testing.T) {
	dates := DateRange(testToday, 3)

	want := []string{"2026-09-01", "2026-08-31", "2026-08-30"}
	for i, d := range want {
		if dates[i] != d {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i], d)
		}
	}
}

func TestDateRangeCrossesMonthBoundary(t *testing.T) {
	mar1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dates := DateRange(mar1, 3)

	// 2026 is not a leap year
	want := []string{"2026-03-01", "2026-02-28", "2026-02-27"}
	for i, d := range want {
		if dates[i] != d {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i], d)
		}
	}
}

func TestDateRangeNoGapsOrDuplicates(t *testing.T) {
	dates := DateRange(testToday, 365)

	seen := make(map[string]bool)
	for _, d := range dates {
		if seen[d] {
			t.Fatalf("duplicate date %s", d)
		}
		seen[d] = true
	}

	for i := 1; i < len(dates); i++ {
		prev, _ := time.Parse("2006-01-02", dates[i-1])
		cur, _ := time.Parse("2006-01-02", dates[i])
		if prev.Sub(cur) != 24*time.Hour {
			t.Fatalf("gap between %s and %s", dates[i-1], dates[i])
		}
	}
}

func TestDateRangeNonPositive(t *testing.T) {
	if got := DateRange(testToday, 0); got != nil {
		t.Errorf("DateRange(0) = %v, want nil", got)
	}
	if got := DateRange(testToday, -5); got != nil {
		t.Errorf("DateRange(-5) = %v, want nil", got)
	}
}
