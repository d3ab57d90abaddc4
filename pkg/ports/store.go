package ports

import (
	"context"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// StateStore persists wizard state per session, so the flow survives
// navigation and reloads. Writes happen after every transition and are
// best-effort: the engine swallows store failures, the canonical state
// lives in memory for the session's duration.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}
