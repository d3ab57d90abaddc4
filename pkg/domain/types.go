package domain

import "time"

// Traveler constraints shared by the client-side predicates and the
// authoritative booking validator.
const (
	MaxTravelers = 5
	MinTravelers = 1
	MinAge       = 1
	MaxAge       = 150
)

// DestinationID identifies a destination from the closed catalog set.
type DestinationID string

const (
	DestinationMars   DestinationID = "mars"
	DestinationEuropa DestinationID = "europa"
	DestinationTitan  DestinationID = "titan"
	DestinationLuna   DestinationID = "luna"
)

// Destination is an immutable catalog record. The wizard state only ever
// stores the ID; the full record is always a catalog lookup.
type Destination struct {
	ID         DestinationID `json:"id"`
	Name       string        `json:"name"`
	Distance   string        `json:"distance"`
	TravelTime string        `json:"travelTime"`
}

// isoLayout is the wire format for calendar dates.
const isoLayout = "2006-01-02"

// ISODate is a calendar date in "YYYY-MM-DD" form. The zero value means
// "not set". Comparisons are date-only; time of day never enters the model.
type ISODate string

// IsZero reports whether the date is unset.
func (d ISODate) IsZero() bool { return d == "" }

// Time parses the date. Callers that only need ordering should prefer After.
func (d ISODate) Time() (time.Time, error) {
	return time.Parse(isoLayout, string(d))
}

// After reports whether d is strictly after other. Unset or malformed
// dates never compare as after anything.
func (d ISODate) After(other ISODate) bool {
	a, err := d.Time()
	if err != nil {
		return false
	}
	b, err := other.Time()
	if err != nil {
		return false
	}
	return a.After(b)
}

// DaysSince returns the whole calendar days from other to d.
func (d ISODate) DaysSince(other ISODate) (int, error) {
	a, err := d.Time()
	if err != nil {
		return 0, err
	}
	b, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(a.Sub(b).Hours() / 24), nil
}

// Date builds an ISODate from a time value, dropping the time of day.
func Date(t time.Time) ISODate {
	return ISODate(t.Format(isoLayout))
}

// Traveler is one entry of the roster. Identity is positional: removing
// index i shifts later travelers down. An empty name and age zero are the
// "not yet entered" sentinels used while the user is editing.
type Traveler struct {
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
}
