// ABOUTME: Journal entry and insight operations for SQLite storage.
// ABOUTME: Insights are highlights lifted out of entries; cascade on entry delete.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// CreateJournalEntry stores a journal entry.
func (d *DB) CreateJournalEntry(e *models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, entry_date, body, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.EntryDate,
		e.Body,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

// GetJournalEntry retrieves an entry by ID or ID prefix.
func (d *DB) GetJournalEntry(idOrPrefix string) (*models.JournalEntry, error) {
	id, err := d.resolveID("journal_entries", idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	var e models.JournalEntry
	var idStr, createdAt string

	row := d.db.QueryRow(`SELECT id, entry_date, body, created_at FROM journal_entries WHERE id = ?`, id)
	if err := row.Scan(&idStr, &e.EntryDate, &e.Body, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, fmt.Errorf("scan journal entry: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &e, nil
}

// ListJournalEntries retrieves entries, most recent day first.
func (d *DB) ListJournalEntries(limit int) ([]*models.JournalEntry, error) {
	query := `SELECT id, entry_date, body, created_at FROM journal_entries ORDER BY entry_date DESC, created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var idStr, createdAt string

		if err := rows.Scan(&idStr, &e.EntryDate, &e.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// CreateInsight stores an insight extracted from an entry.
func (d *DB) CreateInsight(i *models.Insight) error {
	query := `
		INSERT INTO insights (id, entry_id, highlight, note, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		i.ID.String(),
		i.EntryID.String(),
		i.Highlight,
		i.Note,
		i.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create insight: %w", err)
	}
	return nil
}

// ListInsights retrieves insights, optionally for one entry only.
func (d *DB) ListInsights(entryID *uuid.UUID) ([]*models.Insight, error) {
	query := `SELECT id, entry_id, highlight, note, created_at FROM insights`
	var args []interface{}
	if entryID != nil {
		query += ` WHERE entry_id = ?`
		args = append(args, entryID.String())
	}
	query += ` ORDER BY created_at DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	var insights []*models.Insight
	for rows.Next() {
		var i models.Insight
		var idStr, entryStr, createdAt string
		var note sql.NullString

		if err := rows.Scan(&idStr, &entryStr, &i.Highlight, &note, &createdAt); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}

		i.ID, _ = uuid.Parse(idStr)
		i.EntryID, _ = uuid.Parse(entryStr)
		i.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if note.Valid {
			i.Note = &note.String
		}

		insights = append(insights, &i)
	}

	return insights, rows.Err()
}
