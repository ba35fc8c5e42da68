// ABOUTME: Unit tests for Charm KV key layout.
// ABOUTME: Tests type prefixes without requiring a live KV connection.
package charm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

func TestDomainKeyFormat(t *testing.T) {
	d := models.NewDomain("Business")
	key := DomainPrefix + d.ID.String()

	if key[:7] != "domain:" {
		t.Errorf("Expected key to start with 'domain:', got: %s", key[:7])
	}
}

func TestTypePrefixes(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected string
	}{
		{"Domain", DomainPrefix, "domain:"},
		{"Category", CategoryPrefix, "category:"},
		{"Metric", MetricPrefix, "metric:"},
		{"FreePerformance", PerfPrefix, "perf:"},
		{"Event", EventPrefix, "event:"},
		{"Record", RecordPrefix, "record:"},
		{"Journal", JournalPrefix, "journal:"},
		{"Insight", InsightPrefix, "insight:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prefix != tt.expected {
				t.Errorf("Expected %s = %q, got %q", tt.name, tt.expected, tt.prefix)
			}
		})
	}
}

func TestPrefixesAreDistinct(t *testing.T) {
	prefixes := []string{
		DomainPrefix, CategoryPrefix, MetricPrefix, PerfPrefix,
		EventPrefix, RecordPrefix, JournalPrefix, InsightPrefix,
	}

	seen := make(map[string]bool)
	for _, p := range prefixes {
		if seen[p] {
			t.Errorf("duplicate prefix %q", p)
		}
		seen[p] = true
	}
}

func TestEventRoundTripJSON(t *testing.T) {
	m := models.NewMetric(uuid.New(), "Hydration")
	e := models.NewMetricEvent(m, "2026-09-01", models.LevelAdvanced).WithCustomImpact(12)

	data, err := marshalJSON(e)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	got, err := unmarshalJSON[models.MetricEvent](data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.MetricID != e.MetricID || got.RecordedDate != e.RecordedDate {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.CustomImpact == nil || *got.CustomImpact != 12 {
		t.Errorf("CustomImpact = %v, want 12", got.CustomImpact)
	}
}
