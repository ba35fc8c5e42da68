// ABOUTME: JournalEntry and Insight models for the daily journal.
// ABOUTME: An insight is a highlighted span of an entry promoted to a note.
package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-text entry for a calendar day.
type JournalEntry struct {
	ID        uuid.UUID
	EntryDate string
	Body      string
	CreatedAt time.Time
}

// NewJournalEntry creates a journal entry for a date.
func NewJournalEntry(date, body string) *JournalEntry {
	return &JournalEntry{
		ID:        uuid.New(),
		EntryDate: date,
		Body:      body,
		CreatedAt: time.Now(),
	}
}

// Insight is a highlight lifted out of a journal entry.
type Insight struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	Highlight string
	Note      *string
	CreatedAt time.Time
}

// NewInsight creates an insight from a highlighted span of an entry.
func NewInsight(entryID uuid.UUID, highlight string) *Insight {
	return &Insight{
		ID:        uuid.New(),
		EntryID:   entryID,
		Highlight: highlight,
		CreatedAt: time.Now(),
	}
}

// WithNote attaches a note explaining why the highlight matters.
func (i *Insight) WithNote(note string) *Insight {
	i.Note = &note
	return i
}
