// ABOUTME: Tests for streak calculation, grace period, and bonus formula.
// ABOUTME: Pins today explicitly; the streak code never reads the clock.
package scoring

import (
	"testing"
	"time"

	"github.com/harperreed/lifelog/internal/models"
)

func daysAgo(today time.Time, n int) string {
	return models.Day(today.AddDate(0, 0, -n))
}

func TestStreakBonusBoundary(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 2},
		{10, 8},
		{365, 363},
	}

	for _, tt := range tests {
		if got := StreakBonus(tt.streak); got != tt.want {
			t.Errorf("StreakBonus(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestCurrentStreakFromToday(t *testing.T) {
	dates := []string{daysAgo(testToday, 0), daysAgo(testToday, 1), daysAgo(testToday, 2)}

	got := ComputeStreak(dates, testToday)
	if got.Current != 3 {
		t.Errorf("Current = %d, want 3", got.Current)
	}
	if StreakBonus(got.Current) != 1 {
		t.Errorf("bonus = %d, want 1", StreakBonus(got.Current))
	}
}

func TestCurrentStreakGracePeriod(t *testing.T) {
	// Data through yesterday only; today is still in progress.
	dates := []string{daysAgo(testToday, 1), daysAgo(testToday, 2), daysAgo(testToday, 3)}

	got := ComputeStreak(dates, testToday)
	if got.Current != 3 {
		t.Errorf("Current = %d, want 3 (grace period applies)", got.Current)
	}
}

func TestCurrentStreakGracePeriodFiveDays(t *testing.T) {
	// Yesterday through 4 days ago all present, nothing today.
	var dates []string
	for i := 1; i <= 5; i++ {
		dates = append(dates, daysAgo(testToday, i))
	}

	got := ComputeStreak(dates, testToday)
	if got.Current != 5 {
		t.Errorf("Current = %d, want 5", got.Current)
	}
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	// Neither today nor yesterday present.
	dates := []string{daysAgo(testToday, 2), daysAgo(testToday, 3)}

	got := ComputeStreak(dates, testToday)
	if got.Current != 0 {
		t.Errorf("Current = %d, want 0", got.Current)
	}
	if got.Max != 2 {
		t.Errorf("Max = %d, want 2", got.Max)
	}
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	// Today and yesterday present, then a hole, then two more days.
	dates := []string{
		daysAgo(testToday, 0), daysAgo(testToday, 1),
		daysAgo(testToday, 3), daysAgo(testToday, 4),
	}

	got := ComputeStreak(dates, testToday)
	if got.Current != 2 {
		t.Errorf("Current = %d, want 2", got.Current)
	}
	if got.Max != 2 {
		t.Errorf("Max = %d, want 2", got.Max)
	}
}

func TestMaxStreakHistorical(t *testing.T) {
	// An old five-day run beats the current two-day streak.
	dates := []string{
		daysAgo(testToday, 0), daysAgo(testToday, 1),
		daysAgo(testToday, 10), daysAgo(testToday, 11), daysAgo(testToday, 12),
		daysAgo(testToday, 13), daysAgo(testToday, 14),
	}

	got := ComputeStreak(dates, testToday)
	if got.Current != 2 {
		t.Errorf("Current = %d, want 2", got.Current)
	}
	if got.Max != 5 {
		t.Errorf("Max = %d, want 5", got.Max)
	}
}

func TestMaxStreakSeededByCurrent(t *testing.T) {
	// Only the current run exists; max must equal it.
	var dates []string
	for i := 0; i < 4; i++ {
		dates = append(dates, daysAgo(testToday, i))
	}

	got := ComputeStreak(dates, testToday)
	if got.Max != got.Current {
		t.Errorf("Max = %d, Current = %d, want equal", got.Max, got.Current)
	}
}

func TestStreakEmptyAndDuplicates(t *testing.T) {
	if got := ComputeStreak(nil, testToday); got.Current != 0 || got.Max != 0 {
		t.Errorf("empty input: got %+v, want zeros", got)
	}

	// Duplicate dates (several events on one day) count once.
	dates := []string{
		daysAgo(testToday, 0), daysAgo(testToday, 0),
		daysAgo(testToday, 1), daysAgo(testToday, 1),
	}
	got := ComputeStreak(dates, testToday)
	if got.Current != 2 {
		t.Errorf("Current = %d, want 2 (duplicates collapse)", got.Current)
	}
	if got.Max != 2 {
		t.Errorf("Max = %d, want 2", got.Max)
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	mar2 := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	dates := []string{"2026-03-02", "2026-03-01", "2026-02-28", "2026-02-27"}

	got := ComputeStreak(dates, mar2)
	if got.Current != 4 {
		t.Errorf("Current = %d, want 4 (streak spans month boundary)", got.Current)
	}
}
