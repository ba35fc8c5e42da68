// ABOUTME: Metric definition model and PerformanceLevel enum.
// ABOUTME: A metric carries three default impact values, one per performance level.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceLevel represents how well a scheduled metric was performed.
type PerformanceLevel string

const (
	LevelSimple      PerformanceLevel = "simple"
	LevelAdvanced    PerformanceLevel = "advanced"
	LevelExceptional PerformanceLevel = "exceptional"
)

// AllPerformanceLevels returns all valid performance levels, lowest impact first.
var AllPerformanceLevels = []PerformanceLevel{
	LevelSimple, LevelAdvanced, LevelExceptional,
}

// IsValidPerformanceLevel checks if a string is a valid performance level.
func IsValidPerformanceLevel(s string) bool {
	for _, lvl := range AllPerformanceLevels {
		if string(lvl) == s {
			return true
		}
	}
	return false
}

// Default impact values follow the 20/50/80 convention so that raw
// daily sums already land near the 0-100 display range.
const (
	DefaultImpactSimple      = 20.0
	DefaultImpactAdvanced    = 50.0
	DefaultImpactExceptional = 80.0
)

// Metric is the schedulable template a MetricEvent instantiates.
type Metric struct {
	ID                uuid.UUID
	DomainID          uuid.UUID
	CategoryID        *uuid.UUID
	Name              string
	ImpactSimple      float64
	ImpactAdvanced    float64
	ImpactExceptional float64
	Active            bool
	CreatedAt         time.Time
}

// NewMetric creates a new Metric with the standard default impacts.
func NewMetric(domainID uuid.UUID, name string) *Metric {
	return &Metric{
		ID:                uuid.New(),
		DomainID:          domainID,
		Name:              name,
		ImpactSimple:      DefaultImpactSimple,
		ImpactAdvanced:    DefaultImpactAdvanced,
		ImpactExceptional: DefaultImpactExceptional,
		Active:            true,
		CreatedAt:         time.Now(),
	}
}

// WithCategory scopes the metric to a category within its domain.
func (m *Metric) WithCategory(categoryID uuid.UUID) *Metric {
	m.CategoryID = &categoryID
	return m
}

// WithImpacts overrides the three default impact values.
func (m *Metric) WithImpacts(simple, advanced, exceptional float64) *Metric {
	m.ImpactSimple = simple
	m.ImpactAdvanced = advanced
	m.ImpactExceptional = exceptional
	return m
}

// ImpactFor returns the default impact for a performance level.
func (m *Metric) ImpactFor(level PerformanceLevel) float64 {
	switch level {
	case LevelSimple:
		return m.ImpactSimple
	case LevelAdvanced:
		return m.ImpactAdvanced
	case LevelExceptional:
		return m.ImpactExceptional
	}
	return 0
}

// FreePerformance is the template for ad-hoc, unscheduled entries.
type FreePerformance struct {
	ID         uuid.UUID
	DomainID   uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	CreatedAt  time.Time
}

// NewFreePerformance creates a new FreePerformance under the given domain.
func NewFreePerformance(domainID uuid.UUID, name string) *FreePerformance {
	return &FreePerformance{
		ID:        uuid.New(),
		DomainID:  domainID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithCategory scopes the free performance to a category.
func (f *FreePerformance) WithCategory(categoryID uuid.UUID) *FreePerformance {
	f.CategoryID = &categoryID
	return f
}
