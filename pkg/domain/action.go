package domain

// ActionType tags an entry of the closed action vocabulary.
type ActionType string

const (
	ActionSetDestination ActionType = "SET_DESTINATION"
	ActionSetStartDate   ActionType = "SET_START_DATE"
	ActionSetEndDate     ActionType = "SET_END_DATE"
	ActionSetDates       ActionType = "SET_DATES"
	ActionSetTravelers   ActionType = "SET_TRAVELERS"
	ActionAddTraveler    ActionType = "ADD_TRAVELER"
	ActionRemoveTraveler ActionType = "REMOVE_TRAVELER"
	ActionUpdateTraveler ActionType = "UPDATE_TRAVELER"
	ActionReset          ActionType = "RESET"
)

// TravelerField names the traveler field an UPDATE_TRAVELER action targets.
type TravelerField string

const (
	FieldFullName TravelerField = "fullName"
	FieldAge      TravelerField = "age"
)

// Action is the envelope dispatched through the transition function. Only
// the fields relevant to Type carry meaning; the rest stay at their zero
// values. The JSON shape doubles as the dispatch wire format of the HTTP
// adapter.
type Action struct {
	Type          ActionType    `json:"type"`
	DestinationID DestinationID `json:"destinationId,omitempty"`
	DepartureDate ISODate       `json:"departureDate,omitempty"`
	ReturnDate    ISODate       `json:"returnDate,omitempty"`
	Travelers     []Traveler    `json:"travelers,omitempty"`
	Index         int           `json:"index,omitempty"`
	Field         TravelerField `json:"field,omitempty"`
	Name          string        `json:"name,omitempty"`
	Age           int           `json:"age,omitempty"`
}

// SetDestination selects a destination by catalog ID.
func SetDestination(id DestinationID) Action {
	return Action{Type: ActionSetDestination, DestinationID: id}
}

// SetStartDate sets the departure date and nothing else.
func SetStartDate(d ISODate) Action {
	return Action{Type: ActionSetStartDate, DepartureDate: d}
}

// SetEndDate sets the return date and nothing else.
func SetEndDate(d ISODate) Action {
	return Action{Type: ActionSetEndDate, ReturnDate: d}
}

// SetDates sets both dates atomically. Passing an empty return date clears
// it, which is how a departure change invalidating the chosen return date
// is expressed.
func SetDates(start, end ISODate) Action {
	return Action{Type: ActionSetDates, DepartureDate: start, ReturnDate: end}
}

// SetTravelers replaces the whole roster.
func SetTravelers(ts []Traveler) Action {
	return Action{Type: ActionSetTravelers, Travelers: ts}
}

// AddTraveler appends an empty roster entry, up to MaxTravelers.
func AddTraveler() Action {
	return Action{Type: ActionAddTraveler}
}

// RemoveTraveler removes the entry at index.
func RemoveTraveler(index int) Action {
	return Action{Type: ActionRemoveTraveler, Index: index}
}

// UpdateTravelerName replaces the full name of the entry at index.
func UpdateTravelerName(index int, name string) Action {
	return Action{Type: ActionUpdateTraveler, Index: index, Field: FieldFullName, Name: name}
}

// UpdateTravelerAge replaces the age of the entry at index.
func UpdateTravelerAge(index int, age int) Action {
	return Action{Type: ActionUpdateTraveler, Index: index, Field: FieldAge, Age: age}
}

// Reset returns the wizard to the empty initial state.
func Reset() Action {
	return Action{Type: ActionReset}
}
