package ports

import (
	"context"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// DestinationCatalog serves the read-only destination reference data.
// Implementations may fetch remotely; callers cache per session.
type DestinationCatalog interface {
	// List returns all destinations in catalog order.
	List(ctx context.Context) ([]domain.Destination, error)

	// Get resolves a single destination.
	// Returns domain.ErrDestinationNotFound for unknown IDs.
	Get(ctx context.Context, id domain.DestinationID) (domain.Destination, error)
}
