package wizard_test

import (
	"bytes"
	"strings"
	"testing"

	wizard "github.com/dhwrwm/intergalactic-booking-wizard"
)

func TestRunner_HappyPath(t *testing.T) {
	input := strings.Join([]string{
		"1",          // destination: Mars
		"2147-03-10", // departure
		"2147-03-15", // return
		"Ada Lovelace",
		"36",
		"n", // no more travelers
		"y", // confirm
	}, "\n") + "\n"

	var out bytes.Buffer
	r := wizard.NewRunner("runner-session")
	r.Input = strings.NewReader(input)
	r.Output = &out

	w := wizard.New()
	if err := r.Run(w); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Trip duration: 5 days") {
		t.Errorf("duration not printed:\n%s", text)
	}
	if !strings.Contains(text, "Booking confirmed! Reference: BK") {
		t.Errorf("confirmation not printed:\n%s", text)
	}
}

func TestRunner_DeclinedConfirmationLoopsBack(t *testing.T) {
	// Decline once at review, then confirm on the second pass.
	input := strings.Join([]string{
		"2",          // destination: Europa
		"2147-03-10", // departure
		"2147-03-13", // return
		"Mae Jemison",
		"35",
		"n", // no more travelers
		"n", // decline
		"y", // confirm on the retry
	}, "\n") + "\n"

	var out bytes.Buffer
	r := wizard.NewRunner("decline-session")
	r.Input = strings.NewReader(input)
	r.Output = &out

	if err := r.Run(wizard.New()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Booking confirmed!") {
		t.Errorf("expected eventual confirmation:\n%s", out.String())
	}
}

func TestRunner_EOFExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	r := wizard.NewRunner("eof-session")
	r.Input = strings.NewReader("") // user hits ^D immediately
	r.Output = &out

	if err := r.Run(wizard.New()); err != nil {
		t.Fatalf("Run on EOF: %v", err)
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Errorf("expected farewell on EOF:\n%s", out.String())
	}
}

func TestRunner_RendererAppliedToSummary(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"2147-03-10",
		"2147-03-15",
		"Ada Lovelace",
		"36",
		"n",
		"y",
	}, "\n") + "\n"

	var out bytes.Buffer
	r := wizard.NewRunner("render-session")
	r.Input = strings.NewReader(input)
	r.Output = &out
	r.Renderer = func(md string) (string, error) {
		return strings.ToUpper(md), nil
	}

	if err := r.Run(wizard.New()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "# REVIEW YOUR BOOKING") {
		t.Errorf("renderer not applied to the summary:\n%s", out.String())
	}
}
