// ABOUTME: Tests for impact resolution.
// ABOUTME: Verifies override precedence and the missing-definition zero fallback.
package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

func TestResolveImpactLevelDefaults(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Hydration")

	tests := []struct {
		level models.PerformanceLevel
		want  float64
	}{
		{models.LevelSimple, 20},
		{models.LevelAdvanced, 50},
		{models.LevelExceptional, 80},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			ev := models.NewMetricEvent(m, "2026-09-01", tt.level)
			if got := ResolveImpact(ev, m); got != tt.want {
				t.Errorf("ResolveImpact = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveImpactCustomOverrideWins(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Hydration")

	// Override beats even the highest level default (80).
	ev := models.NewMetricEvent(m, "2026-09-01", models.LevelExceptional).WithCustomImpact(7)
	if got := ResolveImpact(ev, m); got != 7 {
		t.Errorf("ResolveImpact = %v, want 7", got)
	}
}

func TestResolveImpactCustomZeroAndNegative(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Hydration")

	zero := models.NewMetricEvent(m, "2026-09-01", models.LevelAdvanced).WithCustomImpact(0)
	if got := ResolveImpact(zero, m); got != 0 {
		t.Errorf("zero override: got %v, want 0", got)
	}

	neg := models.NewMetricEvent(m, "2026-09-01", models.LevelAdvanced).WithCustomImpact(-12.5)
	if got := ResolveImpact(neg, m); got != -12.5 {
		t.Errorf("negative override: got %v, want -12.5", got)
	}
}

func TestResolveImpactMissingDefinition(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Deleted later")
	ev := models.NewMetricEvent(m, "2026-09-01", models.LevelExceptional)

	// Orphaned event (metric deleted) fails closed.
	if got := ResolveImpact(ev, nil); got != 0 {
		t.Errorf("ResolveImpact with nil def = %v, want 0", got)
	}

	// But an orphan with a custom impact still honors it.
	ev.WithCustomImpact(33)
	if got := ResolveImpact(ev, nil); got != 33 {
		t.Errorf("ResolveImpact orphan override = %v, want 33", got)
	}
}
