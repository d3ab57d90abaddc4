package domain

import "fmt"

// State is the single source of truth for the whole flow: everything the
// wizard has collected so far, across all steps. It is plain data with no
// behavior attached, so it round-trips through any StateStore as JSON.
//
// The date pair is allowed to be transiently inconsistent (return before
// departure) while the user is mid-edit; ordering is a concern of the step
// guards and the booking validator, not of the container.
type State struct {
	DestinationID DestinationID `json:"destinationId,omitempty"`
	DepartureDate ISODate       `json:"departureDate,omitempty"`
	ReturnDate    ISODate       `json:"returnDate,omitempty"`
	Travelers     []Traveler    `json:"travelers"`
}

// NewState returns the empty initial state: no destination, no dates,
// an empty roster.
func NewState() State {
	return State{Travelers: []Traveler{}}
}

// Clone returns a deep copy. Reduce works on clones so that previously
// returned states remain valid snapshots.
func (s State) Clone() State {
	out := s
	out.Travelers = make([]Traveler, len(s.Travelers))
	copy(out.Travelers, s.Travelers)
	return out
}

// Empty reports whether the state equals the initial state.
func (s State) Empty() bool {
	return s.DestinationID == "" &&
		s.DepartureDate.IsZero() &&
		s.ReturnDate.IsZero() &&
		len(s.Travelers) == 0
}

// TripDuration renders the trip length in whole calendar days ("1 day",
// "3 days"). ok is false when either date is missing or malformed.
func (s State) TripDuration() (text string, ok bool) {
	if s.DepartureDate.IsZero() || s.ReturnDate.IsZero() {
		return "", false
	}
	days, err := s.ReturnDate.DaysSince(s.DepartureDate)
	if err != nil {
		return "", false
	}
	if days == 1 {
		return "1 day", true
	}
	return fmt.Sprintf("%d days", days), true
}
