// ABOUTME: Consecutive-day streak calculation with a today grace period.
// ABOUTME: Computes current and historical max streaks plus the discipline bonus.
package scoring

import (
	"sort"
	"time"

	"github.com/harperreed/lifelog/internal/models"
)

// StreakResult holds the current and historical maximum streak.
type StreakResult struct {
	Current int
	Max     int
}

// streakBonusThreshold is the streak length where the bonus starts.
const streakBonusThreshold = 3

// StreakBonus returns the additive score bonus for a streak length.
// Streaks under three days earn nothing; from day three on, each
// additional day adds one point (3 → 1, 4 → 2, ...).
func StreakBonus(streak int) int {
	if streak < streakBonusThreshold {
		return 0
	}
	return streak - (streakBonusThreshold - 1)
}

// ComputeStreak walks the distinct dates that have at least one
// contributing event and returns the current and max streak.
//
// The current streak counts consecutive days backward from today. A
// day still in progress does not break an active streak: when today
// has no data yet but yesterday does, the walk starts from yesterday.
// Today is injected; the clock is never read here.
func ComputeStreak(dates []string, today time.Time) StreakResult {
	present := make(map[string]bool, len(dates))
	distinct := make([]string, 0, len(dates))
	for _, d := range dates {
		if !present[d] {
			present[d] = true
			distinct = append(distinct, d)
		}
	}

	current := 0
	start := today
	if !present[models.Day(start)] {
		start = today.AddDate(0, 0, -1) // grace period for an unfinished day
	}
	for d := start; present[models.Day(d)]; d = d.AddDate(0, 0, -1) {
		current++
	}

	// Max streak: scan all distinct days newest first, extending a run
	// while consecutive days differ by exactly one calendar day.
	sort.Sort(sort.Reverse(sort.StringSlice(distinct)))
	max := current
	run := 0
	var prev time.Time
	for i, d := range distinct {
		day, err := time.Parse(models.DayFormat, d)
		if err != nil {
			continue
		}
		if i > 0 && prev.Sub(day) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > max {
			max = run
		}
		prev = day
	}

	return StreakResult{Current: current, Max: max}
}
