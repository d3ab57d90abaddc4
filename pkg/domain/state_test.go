package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

func TestStateClone_Isolation(t *testing.T) {
	s := domain.NewState()
	s = domain.Reduce(s, domain.AddTraveler())
	s = domain.Reduce(s, domain.UpdateTravelerName(0, "Ada Lovelace"))

	clone := s.Clone()
	clone.Travelers[0].FullName = "mutated"
	if s.Travelers[0].FullName != "Ada Lovelace" {
		t.Errorf("clone shares the travelers slice with the original")
	}
}

func TestTripDuration(t *testing.T) {
	cases := []struct {
		name      string
		departure domain.ISODate
		ret       domain.ISODate
		want      string
		wantOK    bool
	}{
		{"one day", "2147-03-10", "2147-03-11", "1 day", true},
		{"several days", "2147-03-10", "2147-03-13", "3 days", true},
		{"missing return", "2147-03-10", "", "", false},
		{"missing departure", "", "2147-03-13", "", false},
		{"malformed", "yesterday", "2147-03-13", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := domain.State{DepartureDate: tc.departure, ReturnDate: tc.ret}
			got, ok := s.TripDuration()
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("TripDuration() = %q, %v; want %q, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestISODate_After(t *testing.T) {
	if !domain.ISODate("2147-03-15").After("2147-03-10") {
		t.Error("later date should compare after")
	}
	if domain.ISODate("2147-03-10").After("2147-03-10") {
		t.Error("equal dates must not compare after")
	}
	if domain.ISODate("").After("2147-03-10") {
		t.Error("unset date must never compare after")
	}
	if domain.ISODate("soon").After("2147-03-10") {
		t.Error("malformed date must never compare after")
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	s := domain.NewState()
	s = domain.Reduce(s, domain.SetDestination(domain.DestinationTitan))
	s = domain.Reduce(s, domain.SetDates("2147-03-10", "2147-03-15"))
	s = domain.Reduce(s, domain.AddTraveler())
	s = domain.Reduce(s, domain.UpdateTravelerName(0, "Ada Lovelace"))
	s = domain.Reduce(s, domain.UpdateTravelerAge(0, 36))

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got domain.State
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.DestinationID != s.DestinationID || got.DepartureDate != s.DepartureDate ||
		got.ReturnDate != s.ReturnDate || len(got.Travelers) != 1 ||
		got.Travelers[0] != s.Travelers[0] {
		t.Errorf("round trip changed the state: %+v", got)
	}
}

func TestNewState_TravelersSerializeAsEmptyArray(t *testing.T) {
	raw, err := json.Marshal(domain.NewState())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"travelers":[]}` {
		t.Errorf("initial state serialized as %s", raw)
	}
}
