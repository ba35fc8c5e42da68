// ABOUTME: MetricEvent and FreePerformanceRecord operations for SQLite storage.
// ABOUTME: Metric events upsert per (metric, date); free records always insert.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// RecordMetricEvent stores a completion event. Recording the same
// metric twice on one day replaces the prior level and custom impact
// instead of duplicating the row.
func (d *DB) RecordMetricEvent(e *models.MetricEvent) error {
	query := `
		INSERT INTO metric_events (id, metric_id, domain_id, category_id, recorded_date, level, custom_impact, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (metric_id, recorded_date) DO UPDATE SET
			level = excluded.level,
			custom_impact = excluded.custom_impact
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.MetricID.String(),
		e.DomainID.String(),
		uuidPtrString(e.CategoryID),
		e.RecordedDate,
		string(e.Level),
		e.CustomImpact,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record metric event: %w", err)
	}
	return nil
}

// DeleteMetricEventByDay removes the completion of a metric on a date
// (the un-check operation).
func (d *DB) DeleteMetricEventByDay(metricID uuid.UUID, date string) error {
	result, err := d.db.Exec(`
		DELETE FROM metric_events WHERE metric_id = ? AND recorded_date = ?
	`, metricID.String(), date)
	if err != nil {
		return fmt.Errorf("delete metric event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete metric event: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no event recorded on %s", date)
	}

	return nil
}

// ListMetricEvents retrieves a domain's events in the inclusive date
// range [start, end]. Day strings compare lexicographically in
// chronological order, so BETWEEN works directly.
func (d *DB) ListMetricEvents(domainID uuid.UUID, start, end string) ([]*models.MetricEvent, error) {
	rows, err := d.db.Query(`
		SELECT id, metric_id, domain_id, category_id, recorded_date, level, custom_impact, created_at
		FROM metric_events
		WHERE domain_id = ? AND recorded_date BETWEEN ? AND ?
		ORDER BY recorded_date DESC
	`, domainID.String(), start, end)
	if err != nil {
		return nil, fmt.Errorf("list metric events: %w", err)
	}
	defer rows.Close()

	var events []*models.MetricEvent
	for rows.Next() {
		var e models.MetricEvent
		var idStr, metricStr, domainStr, level, createdAt string
		var categoryStr sql.NullString
		var customImpact sql.NullFloat64

		err := rows.Scan(&idStr, &metricStr, &domainStr, &categoryStr,
			&e.RecordedDate, &level, &customImpact, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan metric event: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.MetricID, _ = uuid.Parse(metricStr)
		e.DomainID, _ = uuid.Parse(domainStr)
		e.CategoryID = parseUUIDPtr(categoryStr)
		e.Level = models.PerformanceLevel(level)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if customImpact.Valid {
			v := customImpact.Float64
			e.CustomImpact = &v
		}

		events = append(events, &e)
	}

	return events, rows.Err()
}

// CreateRecord stores a free performance record. No per-day
// uniqueness: several records may land on one date and all contribute.
func (d *DB) CreateRecord(r *models.FreePerformanceRecord) error {
	query := `
		INSERT INTO free_performance_records (id, free_performance_id, domain_id, category_id, recorded_date, impact, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		r.ID.String(),
		r.FreePerformanceID.String(),
		r.DomainID.String(),
		uuidPtrString(r.CategoryID),
		r.RecordedDate,
		r.Impact,
		r.Note,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// DeleteRecord removes a free performance record by ID or prefix.
func (d *DB) DeleteRecord(idOrPrefix string) error {
	return d.deleteByID("free_performance_records", idOrPrefix)
}

// ListRecords retrieves a domain's free performance records in the
// inclusive date range [start, end].
func (d *DB) ListRecords(domainID uuid.UUID, start, end string) ([]*models.FreePerformanceRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, free_performance_id, domain_id, category_id, recorded_date, impact, note, created_at
		FROM free_performance_records
		WHERE domain_id = ? AND recorded_date BETWEEN ? AND ?
		ORDER BY recorded_date DESC
	`, domainID.String(), start, end)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*models.FreePerformanceRecord
	for rows.Next() {
		var r models.FreePerformanceRecord
		var idStr, perfStr, domainStr, createdAt string
		var categoryStr, note sql.NullString

		err := rows.Scan(&idStr, &perfStr, &domainStr, &categoryStr,
			&r.RecordedDate, &r.Impact, &note, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		r.ID, _ = uuid.Parse(idStr)
		r.FreePerformanceID, _ = uuid.Parse(perfStr)
		r.DomainID, _ = uuid.Parse(domainStr)
		r.CategoryID = parseUUIDPtr(categoryStr)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if note.Valid {
			r.Note = &note.String
		}

		records = append(records, &r)
	}

	return records, rows.Err()
}
