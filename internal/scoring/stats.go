// ABOUTME: Period statistics over daily scores: averages, fill rate, normalized index.
// ABOUTME: Combines the normalized index with the streak bonus into the displayed score.
package scoring

import "time"

// ScaleConfig controls how raw average scores map onto the display
// range. The scale is configuration rather than a constant because
// different views use different denominators (a /100 score view and a
// /10 summary view). The zero value behaves like DefaultScale.
type ScaleConfig struct {
	// Multiplier rescales the raw average before clamping.
	Multiplier float64
	// Ceiling is the upper clamp bound of the normalized index.
	Ceiling float64
}

// DefaultScale is the /100 display scale. Raw impacts follow the
// 20/50/80 default convention, so daily sums already land near 0-100
// and the multiplier stays at 1.
func DefaultScale() ScaleConfig {
	return ScaleConfig{Multiplier: 1, Ceiling: 100}
}

// SummaryScale is the /10 variant used by compact summary views.
func SummaryScale() ScaleConfig {
	return ScaleConfig{Multiplier: 0.1, Ceiling: 10}
}

// Stats are the derived period statistics for one scope. They are
// ephemeral: recomputed per query, never persisted.
type Stats struct {
	AvgRaw          float64
	FilledRate      float64
	NormalizedIndex float64
	Streak          int
	MaxStreak       int
	StreakBonus     float64
	DisplayedScore  float64
	FilledDays      int
	TotalDays       int
}

// ComputeStats derives period statistics from a date range and the
// daily score map produced by DailyScores.
//
// The average counts filled days only; unfilled days are excluded from
// the denominator, not treated as zero. All ratios return 0 rather
// than NaN when their denominator is empty. The displayed score is the
// normalized index plus the streak bonus and is intentionally not
// re-clamped: a long streak can push a score past the nominal ceiling,
// which is the discipline reward working as intended.
func ComputeStats(dates []string, daily map[string]float64, today time.Time, cfg ScaleConfig) Stats {
	if cfg.Multiplier == 0 {
		cfg.Multiplier = 1
	}
	if cfg.Ceiling == 0 {
		cfg.Ceiling = 100
	}

	var filled []string
	var sum float64
	for _, d := range dates {
		if score, ok := daily[d]; ok {
			filled = append(filled, d)
			sum += score
		}
	}

	s := Stats{
		FilledDays: len(filled),
		TotalDays:  len(dates),
	}
	if s.TotalDays > 0 {
		s.FilledRate = float64(s.FilledDays) / float64(s.TotalDays)
	}
	if s.FilledDays > 0 {
		s.AvgRaw = sum / float64(s.FilledDays)
	}

	idx := s.AvgRaw * cfg.Multiplier
	if idx < 0 {
		idx = 0
	}
	if idx > cfg.Ceiling {
		idx = cfg.Ceiling
	}
	s.NormalizedIndex = idx

	streak := ComputeStreak(filled, today)
	s.Streak = streak.Current
	s.MaxStreak = streak.Max
	s.StreakBonus = float64(StreakBonus(streak.Current))
	s.DisplayedScore = s.NormalizedIndex + s.StreakBonus

	return s
}
