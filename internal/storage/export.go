// ABOUTME: Export and import functionality for lifelog data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifelog/internal/models"
	"gopkg.in/yaml.v3"
)

// Export date bounds wide enough for any recorded day string.
const (
	exportRangeStart = "0000-01-01"
	exportRangeEnd   = "9999-12-31"
)

// ExportData represents the full export format for lifelog data.
type ExportData struct {
	Version          string                           `json:"version" yaml:"version"`
	ExportedAt       time.Time                        `json:"exported_at" yaml:"exported_at"`
	Tool             string                           `json:"tool" yaml:"tool"`
	Domains          []*models.Domain                 `json:"domains" yaml:"domains"`
	Categories       []*models.Category               `json:"categories" yaml:"categories"`
	Metrics          []*models.Metric                 `json:"metrics" yaml:"metrics"`
	FreePerformances []*models.FreePerformance        `json:"free_performances" yaml:"free_performances"`
	Events           []*models.MetricEvent            `json:"events" yaml:"events"`
	Records          []*models.FreePerformanceRecord  `json:"records" yaml:"records"`
	JournalEntries   []*models.JournalEntry           `json:"journal_entries" yaml:"journal_entries"`
	Insights         []*models.Insight                `json:"insights" yaml:"insights"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	domains, err := d.ListDomains()
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lifelog",
		Domains:    domains,
	}

	for _, dom := range domains {
		categories, err := d.ListCategories(dom.ID)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		data.Categories = append(data.Categories, categories...)

		metrics, err := d.ListMetrics(dom.ID, nil, true)
		if err != nil {
			return nil, fmt.Errorf("list metrics: %w", err)
		}
		data.Metrics = append(data.Metrics, metrics...)

		perfs, err := d.ListFreePerformances(dom.ID)
		if err != nil {
			return nil, fmt.Errorf("list free performances: %w", err)
		}
		data.FreePerformances = append(data.FreePerformances, perfs...)

		events, err := d.ListMetricEvents(dom.ID, exportRangeStart, exportRangeEnd)
		if err != nil {
			return nil, fmt.Errorf("list metric events: %w", err)
		}
		data.Events = append(data.Events, events...)

		records, err := d.ListRecords(dom.ID, exportRangeStart, exportRangeEnd)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		data.Records = append(data.Records, records...)
	}

	entries, err := d.ListJournalEntries(0)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	data.JournalEntries = entries

	insights, err := d.ListInsights(nil)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	data.Insights = insights

	return data, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, dom := range data.Domains {
		if err := d.CreateDomain(dom); err != nil {
			return fmt.Errorf("import domain: %w", err)
		}
	}
	for _, c := range data.Categories {
		if err := d.CreateCategory(c); err != nil {
			return fmt.Errorf("import category: %w", err)
		}
	}
	for _, m := range data.Metrics {
		if err := d.CreateMetric(m); err != nil {
			return fmt.Errorf("import metric: %w", err)
		}
	}
	for _, f := range data.FreePerformances {
		if err := d.CreateFreePerformance(f); err != nil {
			return fmt.Errorf("import free performance: %w", err)
		}
	}
	for _, e := range data.Events {
		if err := d.RecordMetricEvent(e); err != nil {
			return fmt.Errorf("import event: %w", err)
		}
	}
	for _, r := range data.Records {
		if err := d.CreateRecord(r); err != nil {
			return fmt.Errorf("import record: %w", err)
		}
	}
	for _, e := range data.JournalEntries {
		if err := d.CreateJournalEntry(e); err != nil {
			return fmt.Errorf("import journal entry: %w", err)
		}
	}
	for _, i := range data.Insights {
		if err := d.CreateInsight(i); err != nil {
			return fmt.Errorf("import insight: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return EncodeJSON(data)
}

// EncodeJSON renders an export as indented JSON.
func EncodeJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// yamlEvent is the YAML-friendly rendering of one recorded event.
type yamlEvent struct {
	ID     string  `yaml:"id"`
	Date   string  `yaml:"date"`
	Name   string  `yaml:"name"`
	Level  string  `yaml:"level,omitempty"`
	Impact float64 `yaml:"impact"`
	Note   string  `yaml:"note,omitempty"`
}

// yamlDomain groups a domain's definitions and events.
type yamlDomain struct {
	Categories []string    `yaml:"categories,omitempty"`
	Metrics    []string    `yaml:"metrics,omitempty"`
	Events     []yamlEvent `yaml:"events,omitempty"`
}

// ExportYAML exports all data as YAML, grouped by domain.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return EncodeYAML(data)
}

// EncodeYAML renders an export as YAML, grouped by domain.
func EncodeYAML(data *ExportData) ([]byte, error) {
	metricsByID := make(map[string]*models.Metric)
	for _, m := range data.Metrics {
		metricsByID[m.ID.String()] = m
	}
	perfsByID := make(map[string]*models.FreePerformance)
	for _, f := range data.FreePerformances {
		perfsByID[f.ID.String()] = f
	}

	yamlData := struct {
		Version    string                `yaml:"version"`
		ExportedAt string                `yaml:"exported_at"`
		Tool       string                `yaml:"tool"`
		Domains    map[string]yamlDomain `yaml:"domains"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Domains:    make(map[string]yamlDomain),
	}

	for _, dom := range data.Domains {
		yd := yamlDomain{}

		for _, c := range data.Categories {
			if c.DomainID == dom.ID {
				yd.Categories = append(yd.Categories, c.Name)
			}
		}
		for _, m := range data.Metrics {
			if m.DomainID == dom.ID {
				yd.Metrics = append(yd.Metrics, m.Name)
			}
		}
		for _, e := range data.Events {
			if e.DomainID != dom.ID {
				continue
			}
			ye := yamlEvent{
				ID:    e.ID.String()[:8],
				Date:  e.RecordedDate,
				Level: string(e.Level),
			}
			if m, ok := metricsByID[e.MetricID.String()]; ok {
				ye.Name = m.Name
				ye.Impact = m.ImpactFor(e.Level)
			}
			if e.CustomImpact != nil {
				ye.Impact = *e.CustomImpact
			}
			yd.Events = append(yd.Events, ye)
		}
		for _, r := range data.Records {
			if r.DomainID != dom.ID {
				continue
			}
			ye := yamlEvent{
				ID:     r.ID.String()[:8],
				Date:   r.RecordedDate,
				Impact: r.Impact,
			}
			if f, ok := perfsByID[r.FreePerformanceID.String()]; ok {
				ye.Name = f.Name
			}
			if r.Note != nil {
				ye.Note = *r.Note
			}
			yd.Events = append(yd.Events, ye)
		}

		yamlData.Domains[dom.Name] = yd
	}

	return yaml.Marshal(yamlData)
}
