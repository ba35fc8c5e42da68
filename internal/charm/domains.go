// ABOUTME: Domain and Category operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
)

// CreateDomain stores a new domain in the KV store.
func (c *Client) CreateDomain(d *models.Domain) error {
	existing, err := listAs[models.Domain](c, DomainPrefix)
	if err != nil {
		return fmt.Errorf("create domain: %w", err)
	}
	for _, dom := range existing {
		if dom.Name == d.Name {
			return fmt.Errorf("domain %s already exists", d.Name)
		}
	}

	data, err := marshalJSON(d)
	if err != nil {
		return fmt.Errorf("marshal domain: %w", err)
	}
	return c.set(DomainPrefix+d.ID.String(), data)
}

// GetDomain retrieves a domain by name, full ID, or ID prefix.
func (c *Client) GetDomain(nameOrID string) (*models.Domain, error) {
	domains, err := listAs[models.Domain](c, DomainPrefix)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	for _, d := range domains {
		if d.Name == nameOrID {
			return d, nil
		}
	}

	data, err := c.getByIDPrefix(DomainPrefix, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return unmarshalJSON[models.Domain](data)
}

// ListDomains retrieves all domains sorted by name.
func (c *Client) ListDomains() ([]*models.Domain, error) {
	domains, err := listAs[models.Domain](c, DomainPrefix)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	sort.Slice(domains, func(i, j int) bool {
		return domains[i].Name < domains[j].Name
	})
	return domains, nil
}

// DeleteDomain removes a domain and its categories, metrics, and free
// performances. Event history is kept, matching the SQLite backend.
func (c *Client) DeleteDomain(nameOrID string) error {
	d, err := c.GetDomain(nameOrID)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}

	categories, err := c.ListCategories(d.ID)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	for _, cat := range categories {
		if err := c.delete(CategoryPrefix + cat.ID.String()); err != nil {
			return fmt.Errorf("delete domain: %w", err)
		}
	}

	metrics, err := c.ListMetrics(d.ID, nil, true)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	for _, m := range metrics {
		if err := c.delete(MetricPrefix + m.ID.String()); err != nil {
			return fmt.Errorf("delete domain: %w", err)
		}
	}

	perfs, err := c.ListFreePerformances(d.ID)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	for _, f := range perfs {
		if err := c.delete(PerfPrefix + f.ID.String()); err != nil {
			return fmt.Errorf("delete domain: %w", err)
		}
	}

	return c.delete(DomainPrefix + d.ID.String())
}

// CreateCategory stores a new category in the KV store.
func (c *Client) CreateCategory(cat *models.Category) error {
	data, err := marshalJSON(cat)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	return c.set(CategoryPrefix+cat.ID.String(), data)
}

// GetCategory retrieves a category in a domain by name, ID, or prefix.
func (c *Client) GetCategory(domainID uuid.UUID, nameOrID string) (*models.Category, error) {
	categories, err := listAs[models.Category](c, CategoryPrefix)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	for _, cat := range categories {
		if cat.DomainID == domainID && cat.Name == nameOrID {
			return cat, nil
		}
	}

	data, err := c.getByIDPrefix(CategoryPrefix, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return unmarshalJSON[models.Category](data)
}

// ListCategories retrieves the categories of a domain sorted by name.
func (c *Client) ListCategories(domainID uuid.UUID) ([]*models.Category, error) {
	all, err := listAs[models.Category](c, CategoryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var categories []*models.Category
	for _, cat := range all {
		if cat.DomainID == domainID {
			categories = append(categories, cat)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// DeleteCategory removes a category by ID or prefix.
func (c *Client) DeleteCategory(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(CategoryPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
