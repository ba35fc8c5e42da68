// ABOUTME: MetricEvent and FreePerformanceRecord operations for Charm KV storage.
// ABOUTME: Enforces the one-event-per-metric-per-day invariant client-side.
package charm

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// RecordMetricEvent stores a completion event. Recording the same
// metric twice on one day replaces the prior record under its
// original key instead of duplicating it.
func (c *Client) RecordMetricEvent(e *models.MetricEvent) error {
	all, err := listAs[models.MetricEvent](c, EventPrefix)
	if err != nil {
		return fmt.Errorf("record metric event: %w", err)
	}

	for _, existing := range all {
		if existing.MetricID == e.MetricID && existing.RecordedDate == e.RecordedDate {
			e.ID = existing.ID
			break
		}
	}

	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal metric event: %w", err)
	}
	return c.set(EventPrefix+e.ID.String(), data)
}

// DeleteMetricEventByDay removes the completion of a metric on a date.
func (c *Client) DeleteMetricEventByDay(metricID uuid.UUID, date string) error {
	all, err := listAs[models.MetricEvent](c, EventPrefix)
	if err != nil {
		return fmt.Errorf("delete metric event: %w", err)
	}

	for _, e := range all {
		if e.MetricID == metricID && e.RecordedDate == date {
			return c.delete(EventPrefix + e.ID.String())
		}
	}
	return fmt.Errorf("no event recorded on %s", date)
}

// ListMetricEvents retrieves a domain's events in the inclusive date
// range [start, end], most recent first.
func (c *Client) ListMetricEvents(domainID uuid.UUID, start, end string) ([]*models.MetricEvent, error) {
	all, err := listAs[models.MetricEvent](c, EventPrefix)
	if err != nil {
		return nil, fmt.Errorf("list metric events: %w", err)
	}

	var events []*models.MetricEvent
	for _, e := range all {
		if e.DomainID != domainID {
			continue
		}
		if e.RecordedDate < start || e.RecordedDate > end {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].RecordedDate > events[j].RecordedDate
	})
	return events, nil
}

// CreateRecord stores a free performance record. No per-day
// uniqueness: several records may land on one date.
func (c *Client) CreateRecord(r *models.FreePerformanceRecord) error {
	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return c.set(RecordPrefix+r.ID.String(), data)
}

// DeleteRecord removes a free performance record by ID or prefix.
func (c *Client) DeleteRecord(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(RecordPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// ListRecords retrieves a domain's free performance records in the
// inclusive date range [start, end], most recent first.
func (c *Client) ListRecords(domainID uuid.UUID, start, end string) ([]*models.FreePerformanceRecord, error) {
	all, err := listAs[models.FreePerformanceRecord](c, RecordPrefix)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	var records []*models.FreePerformanceRecord
	for _, r := range all {
		if r.DomainID != domainID {
			continue
		}
		if r.RecordedDate < start || r.RecordedDate > end {
			continue
		}
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordedDate > records[j].RecordedDate
	})
	return records, nil
}
