// Package file persists wizard sessions as JSON files on the local
// filesystem, one file per session.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// Store implements ports.StateStore on the local filesystem.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath. An empty basePath defaults to
// ".bookingwizard/sessions".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".bookingwizard", "sessions")
	}
	return &Store{BasePath: basePath}
}

// Save writes the session state atomically: temp file, fsync, rename.
// A crash mid-write leaves either the old file or the new one, never a
// truncated mix.
func (s *Store) Save(ctx context.Context, sessionID string, state domain.State) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+sessionID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(sessionID)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load reads the session state. A missing file maps to
// domain.ErrSessionNotFound; corrupt JSON surfaces as an unmarshal error
// and the engine falls back to the empty initial state.
func (s *Store) Load(ctx context.Context, sessionID string) (domain.State, error) {
	if sessionID == "" {
		return domain.State{}, fmt.Errorf("sessionID cannot be empty")
	}

	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.State{}, domain.ErrSessionNotFound
		}
		return domain.State{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.State{}, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	if state.Travelers == nil {
		state.Travelers = []domain.Traveler{}
	}
	return state, nil
}

// Delete removes the session file. Deleting a missing session is fine.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	if err := os.Remove(s.path(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (s *Store) path(sessionID string) string {
	return filepath.Join(s.BasePath, sessionID+".json")
}
