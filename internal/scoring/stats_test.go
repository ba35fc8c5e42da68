// ABOUTME: Tests for period statistics and the end-to-end scoring scenarios.
// ABOUTME: Covers averages over filled days, clamping, scale config, and zero guards.
package scoring

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsAverageExcludesGaps(t *testing.T) {
	dates := DateRange(testToday, 7)
	daily := map[string]float64{
		dates[1]: 40,
		dates[4]: 60,
	}

	s := ComputeStats(dates, daily, testToday, DefaultScale())

	if s.AvgRaw != 50 {
		t.Errorf("AvgRaw = %v, want 50 (gaps excluded from denominator)", s.AvgRaw)
	}
	if !almostEqual(s.FilledRate, 2.0/7.0) {
		t.Errorf("FilledRate = %v, want 2/7", s.FilledRate)
	}
	if s.FilledDays != 2 || s.TotalDays != 7 {
		t.Errorf("FilledDays/TotalDays = %d/%d, want 2/7", s.FilledDays, s.TotalDays)
	}
}

func TestStatsEmptyRange(t *testing.T) {
	s := ComputeStats(nil, nil, testToday, DefaultScale())

	if s.FilledRate != 0 || s.AvgRaw != 0 || s.NormalizedIndex != 0 || s.DisplayedScore != 0 {
		t.Errorf("empty range must yield zeros, got %+v", s)
	}
	if math.IsNaN(s.FilledRate) || math.IsNaN(s.AvgRaw) {
		t.Error("ratios must never be NaN")
	}
}

func TestStatsNoEvents(t *testing.T) {
	dates := DateRange(testToday, 30)
	s := ComputeStats(dates, map[string]float64{}, testToday, DefaultScale())

	if s.AvgRaw != 0 || s.FilledRate != 0 || s.NormalizedIndex != 0 ||
		s.Streak != 0 || s.DisplayedScore != 0 {
		t.Errorf("no events must yield all-zero stats, got %+v", s)
	}
}

func TestStatsClamping(t *testing.T) {
	dates := DateRange(testToday, 2)

	// Net-negative days clamp the index to 0.
	neg := ComputeStats(dates, map[string]float64{dates[0]: -40}, testToday, DefaultScale())
	if neg.NormalizedIndex != 0 {
		t.Errorf("negative avg: NormalizedIndex = %v, want 0", neg.NormalizedIndex)
	}

	// Oversized days clamp to the ceiling.
	big := ComputeStats(dates, map[string]float64{dates[0]: 250}, testToday, DefaultScale())
	if big.NormalizedIndex != 100 {
		t.Errorf("oversized avg: NormalizedIndex = %v, want 100", big.NormalizedIndex)
	}
}

func TestStatsDisplayedScoreUnclamped(t *testing.T) {
	// Five filled consecutive days at max score: streak 5, bonus 3.
	dates := DateRange(testToday, 5)
	daily := make(map[string]float64)
	for _, d := range dates {
		daily[d] = 200
	}

	s := ComputeStats(dates, daily, testToday, DefaultScale())

	if s.NormalizedIndex != 100 {
		t.Fatalf("NormalizedIndex = %v, want 100", s.NormalizedIndex)
	}
	if s.Streak != 5 || s.StreakBonus != 3 {
		t.Fatalf("Streak/Bonus = %d/%v, want 5/3", s.Streak, s.StreakBonus)
	}
	// The bonus pushes the displayed score past the ceiling on purpose.
	if s.DisplayedScore != 103 {
		t.Errorf("DisplayedScore = %v, want 103 (not re-clamped)", s.DisplayedScore)
	}
}

func TestStatsSummaryScale(t *testing.T) {
	dates := DateRange(testToday, 3)
	daily := map[string]float64{dates[0]: 60}

	s := ComputeStats(dates, daily, testToday, SummaryScale())

	if !almostEqual(s.NormalizedIndex, 6) {
		t.Errorf("NormalizedIndex = %v, want 6 on the /10 scale", s.NormalizedIndex)
	}
}

func TestStatsZeroValueScaleBehavesLikeDefault(t *testing.T) {
	dates := DateRange(testToday, 3)
	daily := map[string]float64{dates[0]: 60}

	got := ComputeStats(dates, daily, testToday, ScaleConfig{})
	want := ComputeStats(dates, daily, testToday, DefaultScale())

	if got.NormalizedIndex != want.NormalizedIndex {
		t.Errorf("zero-value scale: NormalizedIndex = %v, want %v", got.NormalizedIndex, want.NormalizedIndex)
	}
}

// End-to-end scenarios through the whole pipeline.

func TestScenarioSingleAdvancedEvent(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Training")
	dates := DateRange(testToday, 3) // [D0, D-1, D-2]

	events := []*models.MetricEvent{
		models.NewMetricEvent(m, dates[1], models.LevelAdvanced),
	}

	daily := DailyScores(DomainScope(m.DomainID), dates, events, nil, []*models.Metric{m})
	if len(daily) != 1 || daily[dates[1]] != 50 {
		t.Fatalf("daily = %v, want {%s: 50}", daily, dates[1])
	}

	s := ComputeStats(dates, daily, testToday, DefaultScale())
	if s.AvgRaw != 50 {
		t.Errorf("AvgRaw = %v, want 50", s.AvgRaw)
	}
	if s.FilledDays != 1 || s.TotalDays != 3 {
		t.Errorf("FilledDays/TotalDays = %d/%d, want 1/3", s.FilledDays, s.TotalDays)
	}
	if !almostEqual(s.FilledRate, 1.0/3.0) {
		t.Errorf("FilledRate = %v, want 1/3", s.FilledRate)
	}
}

func TestScenarioThreeDayStreakWithToday(t *testing.T) {
	fp := models.NewFreePerformance(uuid.New(), "Practice")
	dates := DateRange(testToday, 7)

	var perfs []*models.FreePerformanceRecord
	for i := 0; i < 3; i++ {
		perfs = append(perfs, models.NewFreePerformanceRecord(fp, dates[i], 50))
	}

	daily := DailyScores(DomainScope(fp.DomainID), dates, nil, perfs, nil)
	s := ComputeStats(dates, daily, testToday, DefaultScale())

	if s.Streak != 3 {
		t.Errorf("Streak = %d, want 3", s.Streak)
	}
	if s.StreakBonus != 1 {
		t.Errorf("StreakBonus = %v, want 1", s.StreakBonus)
	}
}

func TestScenarioThreeDayStreakTodayAbsent(t *testing.T) {
	fp := models.NewFreePerformance(uuid.New(), "Practice")
	dates := DateRange(testToday, 7)

	// Days 1..3 back, nothing today.
	var perfs []*models.FreePerformanceRecord
	for i := 1; i <= 3; i++ {
		perfs = append(perfs, models.NewFreePerformanceRecord(fp, dates[i], 50))
	}

	daily := DailyScores(DomainScope(fp.DomainID), dates, nil, perfs, nil)
	s := ComputeStats(dates, daily, testToday, DefaultScale())

	if s.Streak != 3 {
		t.Errorf("Streak = %d, want 3 (grace period)", s.Streak)
	}
	if s.StreakBonus != 1 {
		t.Errorf("StreakBonus = %v, want 1", s.StreakBonus)
	}
}
