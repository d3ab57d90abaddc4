package memory

import (
	"context"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// Catalog implements ports.DestinationCatalog from a fixed slice.
type Catalog struct {
	destinations []domain.Destination
}

// NewCatalog returns the canonical four-destination catalog.
func NewCatalog() *Catalog {
	return NewCatalogWith([]domain.Destination{
		{ID: domain.DestinationMars, Name: "Mars", Distance: "225M km", TravelTime: "7 months"},
		{ID: domain.DestinationEuropa, Name: "Europa", Distance: "628M km", TravelTime: "2 years"},
		{ID: domain.DestinationTitan, Name: "Titan", Distance: "1.2B km", TravelTime: "4 years"},
		{ID: domain.DestinationLuna, Name: "Luna (Moon)", Distance: "384K km", TravelTime: "3 days"},
	})
}

// NewCatalogWith builds a catalog from arbitrary records, preserving order.
func NewCatalogWith(destinations []domain.Destination) *Catalog {
	ds := make([]domain.Destination, len(destinations))
	copy(ds, destinations)
	return &Catalog{destinations: ds}
}

// List returns all destinations in catalog order.
func (c *Catalog) List(ctx context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out, nil
}

// Get resolves a single destination by ID.
func (c *Catalog) Get(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	for _, d := range c.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrDestinationNotFound
}
