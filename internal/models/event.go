// ABOUTME: MetricEvent and FreePerformanceRecord models for recorded events.
// ABOUTME: Events carry a calendar day string, never a time component.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-day layout used for all recorded dates.
// Lexicographic order on these strings matches chronological order.
const DayFormat = "2006-01-02"

// Day formats a time as a calendar-day string.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// MetricEvent is one recorded completion of a scheduled metric on a date.
// At most one exists per (MetricID, RecordedDate); re-recording the same
// day replaces the prior record.
type MetricEvent struct {
	ID           uuid.UUID
	MetricID     uuid.UUID
	DomainID     uuid.UUID
	CategoryID   *uuid.UUID
	RecordedDate string
	Level        PerformanceLevel
	CustomImpact *float64
	CreatedAt    time.Time
}

// NewMetricEvent creates a completion event for a metric on a date.
func NewMetricEvent(m *Metric, date string, level PerformanceLevel) *MetricEvent {
	return &MetricEvent{
		ID:           uuid.New(),
		MetricID:     m.ID,
		DomainID:     m.DomainID,
		CategoryID:   m.CategoryID,
		RecordedDate: date,
		Level:        level,
		CreatedAt:    time.Now(),
	}
}

// WithCustomImpact overrides the metric's default impact for this event.
// Zero and negative overrides are honored.
func (e *MetricEvent) WithCustomImpact(impact float64) *MetricEvent {
	e.CustomImpact = &impact
	return e
}

// FreePerformanceRecord is one ad-hoc entry with a directly specified
// impact. Impact is signed; setback entries carry negative values.
// Multiple records may land on the same date and all contribute.
type FreePerformanceRecord struct {
	ID                uuid.UUID
	FreePerformanceID uuid.UUID
	DomainID          uuid.UUID
	CategoryID        *uuid.UUID
	RecordedDate      string
	Impact            float64
	Note              *string
	CreatedAt         time.Time
}

// NewFreePerformanceRecord creates a record of a free performance.
func NewFreePerformanceRecord(fp *FreePerformance, date string, impact float64) *FreePerformanceRecord {
	return &FreePerformanceRecord{
		ID:                uuid.New(),
		FreePerformanceID: fp.ID,
		DomainID:          fp.DomainID,
		CategoryID:        fp.CategoryID,
		RecordedDate:      date,
		Impact:            impact,
		CreatedAt:         time.Now(),
	}
}

// WithNote sets a note on the record.
func (r *FreePerformanceRecord) WithNote(note string) *FreePerformanceRecord {
	r.Note = &note
	return r
}
