package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrDestinationNotFound is returned for catalog lookups of unknown IDs.
var ErrDestinationNotFound = errors.New("destination not found")

// ErrSubmissionInFlight is returned when a session already has a submission
// in progress. Wizard state is frozen until it settles.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// RejectedError is a booking rejected by the authoritative service despite
// local validation. It is a recoverable outcome: the wizard state is left
// intact so the user can correct and resubmit.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return "booking rejected"
	}
	return e.Reason
}
