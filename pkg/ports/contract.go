package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// RunStateStoreContract verifies that a StateStore implementation honors
// the interface semantics. Every adapter's test suite runs it.
func RunStateStoreContract(t *testing.T, store StateStore) {
	t.Helper()
	ctx := context.Background()
	sessionID := "contract-session"

	// Load of a missing session must be ErrSessionNotFound.
	if _, err := store.Load(ctx, sessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Load missing session: expected ErrSessionNotFound, got %v", err)
	}

	state := domain.NewState()
	state = domain.Reduce(state, domain.SetDestination(domain.DestinationMars))
	state = domain.Reduce(state, domain.SetDates("2147-06-01", "2147-06-08"))
	state = domain.Reduce(state, domain.AddTraveler())
	state = domain.Reduce(state, domain.UpdateTravelerName(0, "Ada Lovelace"))

	if err := store.Save(ctx, sessionID, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, sessionID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DestinationID != domain.DestinationMars {
		t.Errorf("destination not round-tripped: %q", loaded.DestinationID)
	}
	if loaded.DepartureDate != "2147-06-01" || loaded.ReturnDate != "2147-06-08" {
		t.Errorf("dates not round-tripped: %q / %q", loaded.DepartureDate, loaded.ReturnDate)
	}
	if len(loaded.Travelers) != 1 || loaded.Travelers[0].FullName != "Ada Lovelace" {
		t.Errorf("travelers not round-tripped: %+v", loaded.Travelers)
	}

	// Mutating the loaded value must not leak into the stored copy.
	loaded.Travelers[0].FullName = "mutated"
	again, err := store.Load(ctx, sessionID)
	if err != nil {
		t.Fatalf("Load after mutation: %v", err)
	}
	if again.Travelers[0].FullName != "Ada Lovelace" {
		t.Errorf("store not isolated from caller mutations: %+v", again.Travelers)
	}

	// Overwrite with the empty state (a RESET persist) and read it back.
	if err := store.Save(ctx, sessionID, domain.NewState()); err != nil {
		t.Fatalf("Save reset state: %v", err)
	}
	reset, err := store.Load(ctx, sessionID)
	if err != nil {
		t.Fatalf("Load reset state: %v", err)
	}
	if !reset.Empty() {
		t.Errorf("expected empty state after reset save, got %+v", reset)
	}

	if err := store.Delete(ctx, sessionID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, sessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Load after delete: expected ErrSessionNotFound, got %v", err)
	}
}
