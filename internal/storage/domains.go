// ABOUTME: Domain and Category CRUD operations for SQLite storage.
// ABOUTME: Lookups accept an exact name, a full UUID, or an ID prefix.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// CreateDomain stores a new domain.
func (d *DB) CreateDomain(dom *models.Domain) error {
	query := `
		INSERT INTO domains (id, name, color, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		dom.ID.String(),
		dom.Name,
		dom.Color,
		dom.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create domain: %w", err)
	}
	return nil
}

// GetDomain retrieves a domain by name, full ID, or ID prefix.
func (d *DB) GetDomain(nameOrID string) (*models.Domain, error) {
	query := `
		SELECT id, name, color, created_at
		FROM domains
		WHERE name = ?
	`
	dom, err := d.scanDomain(d.db.QueryRow(query, nameOrID))
	if err == nil {
		return dom, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	id, err := d.resolveID("domains", nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return d.scanDomain(d.db.QueryRow(`SELECT id, name, color, created_at FROM domains WHERE id = ?`, id))
}

// ListDomains retrieves all domains sorted by name.
func (d *DB) ListDomains() ([]*models.Domain, error) {
	rows, err := d.db.Query(`SELECT id, name, color, created_at FROM domains ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var domains []*models.Domain
	for rows.Next() {
		var dom models.Domain
		var idStr, createdAt string
		var color sql.NullString

		if err := rows.Scan(&idStr, &dom.Name, &color, &createdAt); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}

		dom.ID, _ = uuid.Parse(idStr)
		dom.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if color.Valid {
			dom.Color = &color.String
		}
		domains = append(domains, &dom)
	}

	return domains, rows.Err()
}

// DeleteDomain removes a domain and cascades to its categories,
// metrics, and free performances. Event history is kept.
func (d *DB) DeleteDomain(nameOrID string) error {
	dom, err := d.GetDomain(nameOrID)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	return d.deleteByID("domains", dom.ID.String())
}

// CreateCategory stores a new category.
func (d *DB) CreateCategory(c *models.Category) error {
	query := `
		INSERT INTO categories (id, domain_id, name, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		c.ID.String(),
		c.DomainID.String(),
		c.Name,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category in a domain by name, ID, or prefix.
func (d *DB) GetCategory(domainID uuid.UUID, nameOrID string) (*models.Category, error) {
	query := `
		SELECT id, domain_id, name, created_at
		FROM categories
		WHERE domain_id = ? AND name = ?
	`
	c, err := d.scanCategory(d.db.QueryRow(query, domainID.String(), nameOrID))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	id, err := d.resolveID("categories", nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return d.scanCategory(d.db.QueryRow(`SELECT id, domain_id, name, created_at FROM categories WHERE id = ?`, id))
}

// ListCategories retrieves the categories of a domain sorted by name.
func (d *DB) ListCategories(domainID uuid.UUID) ([]*models.Category, error) {
	rows, err := d.db.Query(`
		SELECT id, domain_id, name, created_at
		FROM categories
		WHERE domain_id = ?
		ORDER BY name
	`, domainID.String())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		var idStr, domainStr, createdAt string

		if err := rows.Scan(&idStr, &domainStr, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}

		c.ID, _ = uuid.Parse(idStr)
		c.DomainID, _ = uuid.Parse(domainStr)
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

// DeleteCategory removes a category by ID or prefix.
func (d *DB) DeleteCategory(idOrPrefix string) error {
	return d.deleteByID("categories", idOrPrefix)
}

// scanDomain scans a single row into a Domain struct.
func (d *DB) scanDomain(row *sql.Row) (*models.Domain, error) {
	var dom models.Domain
	var idStr, createdAt string
	var color sql.NullString

	err := row.Scan(&idStr, &dom.Name, &color, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan domain: %w", err)
	}

	dom.ID, _ = uuid.Parse(idStr)
	dom.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if color.Valid {
		dom.Color = &color.String
	}

	return &dom, nil
}

// scanCategory scans a single row into a Category struct.
func (d *DB) scanCategory(row *sql.Row) (*models.Category, error) {
	var c models.Category
	var idStr, domainStr, createdAt string

	err := row.Scan(&idStr, &domainStr, &c.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	c.ID, _ = uuid.Parse(idStr)
	c.DomainID, _ = uuid.Parse(domainStr)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &c, nil
}
