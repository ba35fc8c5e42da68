// ABOUTME: Daily score aggregation over metric events and free performances.
// ABOUTME: Folds events into a date→score map; absent key means unfilled day.
package scoring

import (
	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// Scope narrows aggregation to a domain, optionally to one category.
// A nil CategoryID matches every event in the domain.
type Scope struct {
	DomainID   uuid.UUID
	CategoryID *uuid.UUID
}

// DomainScope returns a scope covering a whole domain.
func DomainScope(domainID uuid.UUID) Scope {
	return Scope{DomainID: domainID}
}

// CategoryScope returns a scope covering one category of a domain.
func CategoryScope(domainID, categoryID uuid.UUID) Scope {
	return Scope{DomainID: domainID, CategoryID: &categoryID}
}

// Matches reports whether an event with the given domain and category
// falls inside the scope.
func (s Scope) Matches(domainID uuid.UUID, categoryID *uuid.UUID) bool {
	if domainID != s.DomainID {
		return false
	}
	if s.CategoryID == nil {
		return true
	}
	return categoryID != nil && *categoryID == *s.CategoryID
}

// DailyScores folds metric events and free performance records into a
// map from date to cumulative impact, scoped and restricted to dates.
//
// A date with no matching events is absent from the map; a date whose
// events sum to zero is present with value 0. The two are distinct:
// absent means "unfilled day", present-zero means "filled, net zero".
func DailyScores(scope Scope, dates []string, events []*models.MetricEvent, perfs []*models.FreePerformanceRecord, defs []*models.Metric) map[string]float64 {
	inRange := make(map[string]bool, len(dates))
	for _, d := range dates {
		inRange[d] = true
	}

	defsByID := make(map[uuid.UUID]*models.Metric, len(defs))
	for _, def := range defs {
		defsByID[def.ID] = def
	}

	scores := make(map[string]float64)
	for _, ev := range events {
		if !inRange[ev.RecordedDate] || !scope.Matches(ev.DomainID, ev.CategoryID) {
			continue
		}
		scores[ev.RecordedDate] += ResolveImpact(ev, defsByID[ev.MetricID])
	}
	for _, r := range perfs {
		if !inRange[r.RecordedDate] || !scope.Matches(r.DomainID, r.CategoryID) {
			continue
		}
		// Free performance impacts are already resolved.
		scores[r.RecordedDate] += r.Impact
	}

	return scores
}
