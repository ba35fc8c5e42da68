// ABOUTME: Journal, insight, and export operations for Charm KV storage.
// ABOUTME: Completes the Repository implementation for the synced backend.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/harperreed/lifelog/internal/storage"
)

// CreateJournalEntry stores a journal entry.
func (c *Client) CreateJournalEntry(e *models.JournalEntry) error {
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal journal entry: %w", err)
	}
	return c.set(JournalPrefix+e.ID.String(), data)
}

// GetJournalEntry retrieves an entry by ID or ID prefix.
func (c *Client) GetJournalEntry(idOrPrefix string) (*models.JournalEntry, error) {
	data, err := c.getByIDPrefix(JournalPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return unmarshalJSON[models.JournalEntry](data)
}

// ListJournalEntries retrieves entries, most recent day first.
func (c *Client) ListJournalEntries(limit int) ([]*models.JournalEntry, error) {
	entries, err := listAs[models.JournalEntry](c, JournalPrefix)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EntryDate != entries[j].EntryDate {
			return entries[i].EntryDate > entries[j].EntryDate
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// CreateInsight stores an insight extracted from an entry.
func (c *Client) CreateInsight(i *models.Insight) error {
	data, err := marshalJSON(i)
	if err != nil {
		return fmt.Errorf("marshal insight: %w", err)
	}
	return c.set(InsightPrefix+i.ID.String(), data)
}

// ListInsights retrieves insights, optionally for one entry only.
func (c *Client) ListInsights(entryID *uuid.UUID) ([]*models.Insight, error) {
	all, err := listAs[models.Insight](c, InsightPrefix)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}

	var insights []*models.Insight
	for _, i := range all {
		if entryID != nil && i.EntryID != *entryID {
			continue
		}
		insights = append(insights, i)
	}
	sort.Slice(insights, func(i, j int) bool {
		return insights[i].CreatedAt.After(insights[j].CreatedAt)
	})
	return insights, nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	data := &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lifelog",
	}

	var err error
	if data.Domains, err = c.ListDomains(); err != nil {
		return nil, err
	}
	for _, dom := range data.Domains {
		categories, err := c.ListCategories(dom.ID)
		if err != nil {
			return nil, err
		}
		data.Categories = append(data.Categories, categories...)

		metrics, err := c.ListMetrics(dom.ID, nil, true)
		if err != nil {
			return nil, err
		}
		data.Metrics = append(data.Metrics, metrics...)

		perfs, err := c.ListFreePerformances(dom.ID)
		if err != nil {
			return nil, err
		}
		data.FreePerformances = append(data.FreePerformances, perfs...)
	}

	if data.Events, err = listAs[models.MetricEvent](c, EventPrefix); err != nil {
		return nil, err
	}
	if data.Records, err = listAs[models.FreePerformanceRecord](c, RecordPrefix); err != nil {
		return nil, err
	}
	if data.JournalEntries, err = c.ListJournalEntries(0); err != nil {
		return nil, err
	}
	if data.Insights, err = c.ListInsights(nil); err != nil {
		return nil, err
	}

	return data, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, d := range data.Domains {
		if err := c.CreateDomain(d); err != nil {
			return fmt.Errorf("import domain: %w", err)
		}
	}
	for _, cat := range data.Categories {
		if err := c.CreateCategory(cat); err != nil {
			return fmt.Errorf("import category: %w", err)
		}
	}
	for _, m := range data.Metrics {
		if err := c.CreateMetric(m); err != nil {
			return fmt.Errorf("import metric: %w", err)
		}
	}
	for _, f := range data.FreePerformances {
		if err := c.CreateFreePerformance(f); err != nil {
			return fmt.Errorf("import free performance: %w", err)
		}
	}
	for _, e := range data.Events {
		if err := c.RecordMetricEvent(e); err != nil {
			return fmt.Errorf("import event: %w", err)
		}
	}
	for _, r := range data.Records {
		if err := c.CreateRecord(r); err != nil {
			return fmt.Errorf("import record: %w", err)
		}
	}
	for _, e := range data.JournalEntries {
		if err := c.CreateJournalEntry(e); err != nil {
			return fmt.Errorf("import journal entry: %w", err)
		}
	}
	for _, i := range data.Insights {
		if err := c.CreateInsight(i); err != nil {
			return fmt.Errorf("import insight: %w", err)
		}
	}

	return nil
}
