// ABOUTME: Repository interface for life-tracking data storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// Repository defines the storage interface for lifelog data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Domain operations
	CreateDomain(d *models.Domain) error
	GetDomain(nameOrID string) (*models.Domain, error)
	ListDomains() ([]*models.Domain, error)
	DeleteDomain(nameOrID string) error

	// Category operations
	CreateCategory(c *models.Category) error
	GetCategory(domainID uuid.UUID, nameOrID string) (*models.Category, error)
	ListCategories(domainID uuid.UUID) ([]*models.Category, error)
	DeleteCategory(idOrPrefix string) error

	// Metric definition operations
	CreateMetric(m *models.Metric) error
	GetMetric(nameOrID string) (*models.Metric, error)
	ListMetrics(domainID uuid.UUID, categoryID *uuid.UUID, includeInactive bool) ([]*models.Metric, error)
	SetMetricActive(nameOrID string, active bool) error
	DeleteMetric(nameOrID string) error

	// Free performance definition operations
	CreateFreePerformance(f *models.FreePerformance) error
	GetFreePerformance(nameOrID string) (*models.FreePerformance, error)
	ListFreePerformances(domainID uuid.UUID) ([]*models.FreePerformance, error)
	DeleteFreePerformance(nameOrID string) error

	// Metric event operations. RecordMetricEvent upserts: at most one
	// event exists per (metric, date), so re-recording replaces the
	// prior level and custom impact for that day.
	RecordMetricEvent(e *models.MetricEvent) error
	DeleteMetricEventByDay(metricID uuid.UUID, date string) error
	ListMetricEvents(domainID uuid.UUID, start, end string) ([]*models.MetricEvent, error)

	// Free performance record operations
	CreateRecord(r *models.FreePerformanceRecord) error
	DeleteRecord(idOrPrefix string) error
	ListRecords(domainID uuid.UUID, start, end string) ([]*models.FreePerformanceRecord, error)

	// Journal operations
	CreateJournalEntry(e *models.JournalEntry) error
	GetJournalEntry(idOrPrefix string) (*models.JournalEntry, error)
	ListJournalEntries(limit int) ([]*models.JournalEntry, error)
	CreateInsight(i *models.Insight) error
	ListInsights(entryID *uuid.UUID) ([]*models.Insight, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
