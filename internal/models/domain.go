// ABOUTME: Domain and Category models for life-area grouping.
// ABOUTME: Domains are top-level areas, categories are sub-groups within a domain.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Domain represents a top-level life area, e.g. Business or Sport.
type Domain struct {
	ID        uuid.UUID
	Name      string
	Color     *string
	CreatedAt time.Time
}

// NewDomain creates a new Domain with generated UUID and current timestamp.
func NewDomain(name string) *Domain {
	return &Domain{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithColor sets a display color for the domain.
func (d *Domain) WithColor(color string) *Domain {
	d.Color = &color
	return d
}

// Category represents a sub-grouping within a domain.
type Category struct {
	ID        uuid.UUID
	DomainID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewCategory creates a new Category under the given domain.
func NewCategory(domainID uuid.UUID, name string) *Category {
	return &Category{
		ID:        uuid.New(),
		DomainID:  domainID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}
