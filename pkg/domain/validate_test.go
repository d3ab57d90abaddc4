package domain_test

import (
	"testing"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

func TestTravelerValid(t *testing.T) {
	cases := []struct {
		name     string
		traveler domain.Traveler
		want     bool
	}{
		{"complete", domain.Traveler{FullName: "Ada Lovelace", Age: 36}, true},
		{"min age", domain.Traveler{FullName: "Ada", Age: domain.MinAge}, true},
		{"max age", domain.Traveler{FullName: "Ada", Age: domain.MaxAge}, true},
		{"empty name", domain.Traveler{FullName: "", Age: 36}, false},
		{"whitespace name", domain.Traveler{FullName: "   ", Age: 36}, false},
		{"age zero sentinel", domain.Traveler{FullName: "Ada", Age: 0}, false},
		{"negative age", domain.Traveler{FullName: "Ada", Age: -3}, false},
		{"over max age", domain.Traveler{FullName: "Ada", Age: domain.MaxAge + 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.TravelerValid(tc.traveler); got != tc.want {
				t.Errorf("TravelerValid(%+v) = %v, want %v", tc.traveler, got, tc.want)
			}
		})
	}
}

func TestStepPermitted_Destination(t *testing.T) {
	if !domain.StepPermitted(domain.NewState(), domain.StepDestination) {
		t.Error("destination step must always be permitted")
	}
}

func TestStepPermitted_Travelers(t *testing.T) {
	base := domain.State{
		DestinationID: domain.DestinationMars,
		DepartureDate: "2147-03-10",
		ReturnDate:    "2147-03-15",
		Travelers:     []domain.Traveler{},
	}

	cases := []struct {
		name   string
		mutate func(*domain.State)
		want   bool
	}{
		{"complete itinerary", func(*domain.State) {}, true},
		{"no destination", func(s *domain.State) { s.DestinationID = "" }, false},
		{"no departure", func(s *domain.State) { s.DepartureDate = "" }, false},
		{"no return", func(s *domain.State) { s.ReturnDate = "" }, false},
		{"equal dates", func(s *domain.State) { s.ReturnDate = s.DepartureDate }, false},
		{"return before departure", func(s *domain.State) { s.ReturnDate = "2147-03-01" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base.Clone()
			tc.mutate(&s)
			if got := domain.StepPermitted(s, domain.StepTravelers); got != tc.want {
				t.Errorf("StepPermitted(travelers) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStepPermitted_Review(t *testing.T) {
	base := domain.State{
		DestinationID: domain.DestinationMars,
		DepartureDate: "2147-03-10",
		ReturnDate:    "2147-03-15",
		Travelers:     []domain.Traveler{{FullName: "Ada Lovelace", Age: 36}},
	}

	if !domain.StepPermitted(base, domain.StepReview) {
		t.Error("complete state must permit review")
	}

	empty := base.Clone()
	empty.Travelers = []domain.Traveler{}
	if domain.StepPermitted(empty, domain.StepReview) {
		t.Error("empty roster must not permit review")
	}

	invalid := base.Clone()
	invalid.Travelers = append(invalid.Travelers, domain.Traveler{FullName: "Stowaway"})
	if domain.StepPermitted(invalid, domain.StepReview) {
		t.Error("one invalid traveler must block review")
	}

	noDates := base.Clone()
	noDates.ReturnDate = ""
	if domain.StepPermitted(noDates, domain.StepReview) {
		t.Error("review must also require the travelers gate")
	}
}

func TestStepPermitted_UnknownStepDenied(t *testing.T) {
	s := domain.State{
		DestinationID: domain.DestinationMars,
		DepartureDate: "2147-03-10",
		ReturnDate:    "2147-03-15",
		Travelers:     []domain.Traveler{{FullName: "Ada Lovelace", Age: 36}},
	}
	if domain.StepPermitted(s, domain.Step("payment")) {
		t.Error("unknown step token must be denied even on a complete state")
	}
}

func TestParseStep(t *testing.T) {
	cases := []struct {
		in     string
		want   domain.Step
		wantOK bool
	}{
		{"destination", domain.StepDestination, true},
		{"travelers", domain.StepTravelers, true},
		{"review", domain.StepReview, true},
		{"", "", false},
		{"Destination", "", false},
		{"payment", "", false},
	}
	for _, tc := range cases {
		got, ok := domain.ParseStep(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseStep(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
