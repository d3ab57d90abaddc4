package domain

// Reduce is the transition function of the wizard: a pure, total mapping
// from (state, action) to the next state. It never mutates its input; every
// effective transition returns a fresh value, so references to earlier
// states stay valid snapshots.
//
// Unrecognized action types, out-of-range indexes and adding past the
// traveler cap all return the input state unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetDestination:
		out := s.Clone()
		out.DestinationID = a.DestinationID
		return out

	case ActionSetStartDate:
		out := s.Clone()
		out.DepartureDate = a.DepartureDate
		return out

	case ActionSetEndDate:
		out := s.Clone()
		out.ReturnDate = a.ReturnDate
		return out

	case ActionSetDates:
		out := s.Clone()
		out.DepartureDate = a.DepartureDate
		out.ReturnDate = a.ReturnDate
		return out

	case ActionSetTravelers:
		out := s.Clone()
		out.Travelers = make([]Traveler, len(a.Travelers))
		copy(out.Travelers, a.Travelers)
		return out

	case ActionAddTraveler:
		if len(s.Travelers) >= MaxTravelers {
			return s
		}
		out := s.Clone()
		out.Travelers = append(out.Travelers, Traveler{})
		return out

	case ActionRemoveTraveler:
		if a.Index < 0 || a.Index >= len(s.Travelers) {
			return s
		}
		out := s.Clone()
		out.Travelers = append(out.Travelers[:a.Index], out.Travelers[a.Index+1:]...)
		return out

	case ActionUpdateTraveler:
		if a.Index < 0 || a.Index >= len(s.Travelers) {
			return s
		}
		out := s.Clone()
		switch a.Field {
		case FieldFullName:
			out.Travelers[a.Index].FullName = a.Name
		case FieldAge:
			out.Travelers[a.Index].Age = a.Age
		default:
			return s
		}
		return out

	case ActionReset:
		return NewState()
	}

	return s
}
