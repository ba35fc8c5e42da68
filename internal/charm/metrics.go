// ABOUTME: Metric and FreePerformance definition operations for Charm KV storage.
// ABOUTME: Definitions are looked up by name with ID-prefix fallback.
package charm

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// CreateMetric stores a new metric definition in the KV store.
func (c *Client) CreateMetric(m *models.Metric) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal metric: %w", err)
	}
	return c.set(MetricPrefix+m.ID.String(), data)
}

// GetMetric retrieves a metric by name, full ID, or ID prefix.
// Name lookup errors when two domains share a metric name.
func (c *Client) GetMetric(nameOrID string) (*models.Metric, error) {
	all, err := listAs[models.Metric](c, MetricPrefix)
	if err != nil {
		return nil, fmt.Errorf("get metric: %w", err)
	}

	var matches []*models.Metric
	for _, m := range all {
		if m.Name == nameOrID {
			matches = append(matches, m)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous metric name %s: exists in multiple domains", nameOrID)
	}

	data, err := c.getByIDPrefix(MetricPrefix, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get metric: %w", err)
	}
	return unmarshalJSON[models.Metric](data)
}

// ListMetrics retrieves metric definitions for a domain, optionally
// narrowed to a category.
func (c *Client) ListMetrics(domainID uuid.UUID, categoryID *uuid.UUID, includeInactive bool) ([]*models.Metric, error) {
	all, err := listAs[models.Metric](c, MetricPrefix)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}

	var metrics []*models.Metric
	for _, m := range all {
		if m.DomainID != domainID {
			continue
		}
		if categoryID != nil && (m.CategoryID == nil || *m.CategoryID != *categoryID) {
			continue
		}
		if !includeInactive && !m.Active {
			continue
		}
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Name < metrics[j].Name
	})
	return metrics, nil
}

// SetMetricActive archives or reactivates a metric definition.
func (c *Client) SetMetricActive(nameOrID string, active bool) error {
	m, err := c.GetMetric(nameOrID)
	if err != nil {
		return fmt.Errorf("set metric active: %w", err)
	}
	m.Active = active

	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal metric: %w", err)
	}
	return c.set(MetricPrefix+m.ID.String(), data)
}

// DeleteMetric removes a metric definition. Its events stay behind as
// orphans and resolve to zero impact.
func (c *Client) DeleteMetric(nameOrID string) error {
	m, err := c.GetMetric(nameOrID)
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}
	return c.delete(MetricPrefix + m.ID.String())
}

// CreateFreePerformance stores a new free performance definition.
func (c *Client) CreateFreePerformance(f *models.FreePerformance) error {
	data, err := marshalJSON(f)
	if err != nil {
		return fmt.Errorf("marshal free performance: %w", err)
	}
	return c.set(PerfPrefix+f.ID.String(), data)
}

// GetFreePerformance retrieves a free performance by name, ID, or prefix.
func (c *Client) GetFreePerformance(nameOrID string) (*models.FreePerformance, error) {
	all, err := listAs[models.FreePerformance](c, PerfPrefix)
	if err != nil {
		return nil, fmt.Errorf("get free performance: %w", err)
	}

	var matches []*models.FreePerformance
	for _, f := range all {
		if f.Name == nameOrID {
			matches = append(matches, f)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous free performance name %s: exists in multiple domains", nameOrID)
	}

	data, err := c.getByIDPrefix(PerfPrefix, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get free performance: %w", err)
	}
	return unmarshalJSON[models.FreePerformance](data)
}

// ListFreePerformances retrieves definitions for a domain sorted by name.
func (c *Client) ListFreePerformances(domainID uuid.UUID) ([]*models.FreePerformance, error) {
	all, err := listAs[models.FreePerformance](c, PerfPrefix)
	if err != nil {
		return nil, fmt.Errorf("list free performances: %w", err)
	}

	var perfs []*models.FreePerformance
	for _, f := range all {
		if f.DomainID == domainID {
			perfs = append(perfs, f)
		}
	}
	sort.Slice(perfs, func(i, j int) bool {
		return perfs[i].Name < perfs[j].Name
	})
	return perfs, nil
}

// DeleteFreePerformance removes a free performance definition.
func (c *Client) DeleteFreePerformance(nameOrID string) error {
	f, err := c.GetFreePerformance(nameOrID)
	if err != nil {
		return fmt.Errorf("delete free performance: %w", err)
	}
	return c.delete(PerfPrefix + f.ID.String())
}
