package domain

import "strings"

// TravelerValid reports whether a roster entry is complete: a non-blank
// name and an age within [MinAge, MaxAge]. The age-zero editing sentinel
// falls below MinAge and is rejected like any other out-of-range value.
func TravelerValid(t Traveler) bool {
	return strings.TrimSpace(t.FullName) != "" &&
		t.Age >= MinAge && t.Age <= MaxAge
}

// StepPermitted is the step guard: it decides, from the state alone,
// whether the given step may be entered. It needs no navigation history,
// so deep links re-derive the answer on every render.
//
//   - destination: always permitted, it is the entry point.
//   - travelers: destination chosen, both dates set, and the return date
//     strictly after the departure date (equal dates fail).
//   - review: the travelers gate, plus a non-empty roster in which every
//     traveler is valid.
//
// Any other step token is denied.
func StepPermitted(s State, step Step) bool {
	switch step {
	case StepDestination:
		return true

	case StepTravelers:
		return itineraryComplete(s)

	case StepReview:
		if !itineraryComplete(s) || len(s.Travelers) == 0 {
			return false
		}
		for _, t := range s.Travelers {
			if !TravelerValid(t) {
				return false
			}
		}
		return true
	}
	return false
}

func itineraryComplete(s State) bool {
	return s.DestinationID != "" &&
		!s.DepartureDate.IsZero() &&
		!s.ReturnDate.IsZero() &&
		s.ReturnDate.After(s.DepartureDate)
}
