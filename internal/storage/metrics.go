// ABOUTME: Metric and FreePerformance definition CRUD for SQLite storage.
// ABOUTME: Definitions are looked up by name, full ID, or ID prefix.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

const metricColumns = `id, domain_id, category_id, name, impact_simple, impact_advanced, impact_exceptional, active, created_at`

// CreateMetric stores a new metric definition.
func (d *DB) CreateMetric(m *models.Metric) error {
	query := `
		INSERT INTO metrics (` + metricColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.DomainID.String(),
		uuidPtrString(m.CategoryID),
		m.Name,
		m.ImpactSimple,
		m.ImpactAdvanced,
		m.ImpactExceptional,
		m.Active,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}
	return nil
}

// GetMetric retrieves a metric by name, full ID, or ID prefix.
// Name lookup errors when two domains share a metric name.
func (d *DB) GetMetric(nameOrID string) (*models.Metric, error) {
	rows, err := d.db.Query(`SELECT `+metricColumns+` FROM metrics WHERE name = ?`, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get metric: %w", err)
	}
	defer rows.Close()

	metrics, err := d.scanMetrics(rows)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 1 {
		return metrics[0], nil
	}
	if len(metrics) > 1 {
		return nil, fmt.Errorf("ambiguous metric name %s: exists in multiple domains", nameOrID)
	}

	id, err := d.resolveID("metrics", nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get metric: %w", err)
	}
	return d.scanMetric(d.db.QueryRow(`SELECT `+metricColumns+` FROM metrics WHERE id = ?`, id))
}

// ListMetrics retrieves metric definitions for a domain, optionally
// narrowed to a category. Inactive metrics are included on request so
// stats can still resolve impacts for their historical events.
func (d *DB) ListMetrics(domainID uuid.UUID, categoryID *uuid.UUID, includeInactive bool) ([]*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM metrics WHERE domain_id = ?`
	args := []interface{}{domainID.String()}

	if categoryID != nil {
		query += ` AND category_id = ?`
		args = append(args, categoryID.String())
	}
	if !includeInactive {
		query += ` AND active = 1`
	}
	query += ` ORDER BY name`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	return d.scanMetrics(rows)
}

// SetMetricActive archives or reactivates a metric definition.
func (d *DB) SetMetricActive(nameOrID string, active bool) error {
	m, err := d.GetMetric(nameOrID)
	if err != nil {
		return fmt.Errorf("set metric active: %w", err)
	}

	_, err = d.db.Exec(`UPDATE metrics SET active = ? WHERE id = ?`, active, m.ID.String())
	if err != nil {
		return fmt.Errorf("set metric active: %w", err)
	}
	return nil
}

// DeleteMetric removes a metric definition. Its recorded events stay
// behind as orphans and resolve to zero impact.
func (d *DB) DeleteMetric(nameOrID string) error {
	m, err := d.GetMetric(nameOrID)
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}
	return d.deleteByID("metrics", m.ID.String())
}

// CreateFreePerformance stores a new free performance definition.
func (d *DB) CreateFreePerformance(f *models.FreePerformance) error {
	query := `
		INSERT INTO free_performances (id, domain_id, category_id, name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		f.ID.String(),
		f.DomainID.String(),
		uuidPtrString(f.CategoryID),
		f.Name,
		f.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create free performance: %w", err)
	}
	return nil
}

// GetFreePerformance retrieves a free performance by name, ID, or prefix.
func (d *DB) GetFreePerformance(nameOrID string) (*models.FreePerformance, error) {
	rows, err := d.db.Query(`
		SELECT id, domain_id, category_id, name, created_at
		FROM free_performances
		WHERE name = ?
	`, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get free performance: %w", err)
	}
	defer rows.Close()

	perfs, err := d.scanFreePerformances(rows)
	if err != nil {
		return nil, err
	}
	if len(perfs) == 1 {
		return perfs[0], nil
	}
	if len(perfs) > 1 {
		return nil, fmt.Errorf("ambiguous free performance name %s: exists in multiple domains", nameOrID)
	}

	id, err := d.resolveID("free_performances", nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get free performance: %w", err)
	}

	prows, err := d.db.Query(`
		SELECT id, domain_id, category_id, name, created_at
		FROM free_performances
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get free performance: %w", err)
	}
	defer prows.Close()

	perfs, err = d.scanFreePerformances(prows)
	if err != nil {
		return nil, err
	}
	if len(perfs) == 0 {
		return nil, fmt.Errorf("not found: %s", nameOrID)
	}
	return perfs[0], nil
}

// ListFreePerformances retrieves definitions for a domain sorted by name.
func (d *DB) ListFreePerformances(domainID uuid.UUID) ([]*models.FreePerformance, error) {
	rows, err := d.db.Query(`
		SELECT id, domain_id, category_id, name, created_at
		FROM free_performances
		WHERE domain_id = ?
		ORDER BY name
	`, domainID.String())
	if err != nil {
		return nil, fmt.Errorf("list free performances: %w", err)
	}
	defer rows.Close()

	return d.scanFreePerformances(rows)
}

// DeleteFreePerformance removes a free performance definition.
func (d *DB) DeleteFreePerformance(nameOrID string) error {
	f, err := d.GetFreePerformance(nameOrID)
	if err != nil {
		return fmt.Errorf("delete free performance: %w", err)
	}
	return d.deleteByID("free_performances", f.ID.String())
}

// scanMetric scans a single row into a Metric struct.
func (d *DB) scanMetric(row *sql.Row) (*models.Metric, error) {
	var m models.Metric
	var idStr, domainStr, createdAt string
	var categoryStr sql.NullString

	err := row.Scan(&idStr, &domainStr, &categoryStr, &m.Name,
		&m.ImpactSimple, &m.ImpactAdvanced, &m.ImpactExceptional, &m.Active, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan metric: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.DomainID, _ = uuid.Parse(domainStr)
	m.CategoryID = parseUUIDPtr(categoryStr)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &m, nil
}

// scanMetrics scans multiple rows into a slice of Metrics.
func (d *DB) scanMetrics(rows *sql.Rows) ([]*models.Metric, error) {
	var metrics []*models.Metric

	for rows.Next() {
		var m models.Metric
		var idStr, domainStr, createdAt string
		var categoryStr sql.NullString

		err := rows.Scan(&idStr, &domainStr, &categoryStr, &m.Name,
			&m.ImpactSimple, &m.ImpactAdvanced, &m.ImpactExceptional, &m.Active, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.DomainID, _ = uuid.Parse(domainStr)
		m.CategoryID = parseUUIDPtr(categoryStr)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		metrics = append(metrics, &m)
	}

	return metrics, rows.Err()
}

// scanFreePerformances scans multiple rows into FreePerformance structs.
func (d *DB) scanFreePerformances(rows *sql.Rows) ([]*models.FreePerformance, error) {
	var perfs []*models.FreePerformance

	for rows.Next() {
		var f models.FreePerformance
		var idStr, domainStr, createdAt string
		var categoryStr sql.NullString

		if err := rows.Scan(&idStr, &domainStr, &categoryStr, &f.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan free performance: %w", err)
		}

		f.ID, _ = uuid.Parse(idStr)
		f.DomainID, _ = uuid.Parse(domainStr)
		f.CategoryID = parseUUIDPtr(categoryStr)
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		perfs = append(perfs, &f)
	}

	return perfs, rows.Err()
}

// uuidPtrString converts an optional UUID to a nullable column value.
func uuidPtrString(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

// parseUUIDPtr converts a nullable column value back to an optional UUID.
func parseUUIDPtr(s sql.NullString) *uuid.UUID {
	if !s.Valid {
		return nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil
	}
	return &id
}
