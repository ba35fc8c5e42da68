// ABOUTME: Impact resolution for recorded metric events.
// ABOUTME: Custom overrides win over per-level defaults; missing definitions resolve to zero.
package scoring

import "github.com/harperreed/lifelog/internal/models"

// ResolveImpact returns the effective impact of a metric event.
//
// A custom override is returned unchanged, including zero and negative
// values. Otherwise the parent metric's default for the event's
// performance level applies. An event whose metric definition is gone
// (deleted after the event was recorded) contributes zero rather than
// failing; callers may log such orphans as a data-quality warning.
func ResolveImpact(ev *models.MetricEvent, def *models.Metric) float64 {
	if ev == nil {
		return 0
	}
	if ev.CustomImpact != nil {
		return *ev.CustomImpact
	}
	if def == nil {
		return 0
	}
	return def.ImpactFor(ev.Level)
}
