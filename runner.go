package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// ContentRenderer transforms markdown before it is written, so the review
// summary can be styled for the terminal without coupling this package to
// a TUI library.
type ContentRenderer func(string) (string, error)

// Runner walks a wizard session interactively over the provided IO. It
// honors the same step guards and submission pipeline as any other host.
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	SessionID string
	Renderer  ContentRenderer
}

// NewRunner creates a Runner for the given session. Input and Output must
// be set before Run (os.Stdin/os.Stdout for a real terminal).
func NewRunner(sessionID string) *Runner {
	return &Runner{SessionID: sessionID}
}

// Run executes the wizard loop until a confirmed booking or EOF.
func (r *Runner) Run(w *Wizard) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	ctx := context.Background()
	in := bufio.NewReader(r.Input)
	state := w.Start(ctx, r.SessionID)

	step := domain.DefaultStep
	for {
		// Re-run the guard before rendering anything: edits may have
		// invalidated the step we were heading to.
		resolved, redirected := w.Resolve(ctx, r.SessionID, state, step)
		if redirected {
			fmt.Fprintln(r.Output, "(returning to the destination step)")
		}
		step = resolved

		var (
			done bool
			err  error
		)
		switch step {
		case domain.StepDestination:
			state, err = r.destinationStep(ctx, w, in, state)
			step = domain.StepTravelers
		case domain.StepTravelers:
			state, err = r.travelersStep(ctx, w, in, state)
			step = domain.StepReview
		case domain.StepReview:
			state, done, err = r.reviewStep(ctx, w, in, state)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.Output, "Bye!")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (r *Runner) destinationStep(ctx context.Context, w *Wizard, in *bufio.Reader, state domain.State) (domain.State, error) {
	destinations, err := w.Destinations(ctx)
	if err != nil {
		// Recoverable: offer a retry instead of corrupting the session.
		fmt.Fprintf(r.Output, "Failed to load destinations: %v\n", err)
		answer, rerr := r.prompt(in, "Retry? (y/N) ")
		if rerr != nil {
			return state, rerr
		}
		if strings.EqualFold(answer, "y") {
			return state, nil
		}
		return state, err
	}

	fmt.Fprintln(r.Output, "Step 1: Select Destination and Dates")
	for i, d := range destinations {
		fmt.Fprintf(r.Output, "  %d. %s (%s away, about %s)\n", i+1, d.Name, d.Distance, d.TravelTime)
	}

	choice, err := r.prompt(in, "Destination number: ")
	if err != nil {
		return state, err
	}
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(destinations) {
		state, err = w.Dispatch(ctx, r.SessionID, state, domain.SetDestination(destinations[n-1].ID))
		if err != nil {
			return state, err
		}
	}

	depart, err := r.prompt(in, "Departure date (YYYY-MM-DD): ")
	if err != nil {
		return state, err
	}
	state, err = w.SetDeparture(ctx, r.SessionID, state, domain.ISODate(depart))
	if err != nil {
		return state, err
	}

	ret, err := r.prompt(in, "Return date (YYYY-MM-DD): ")
	if err != nil {
		return state, err
	}
	state, err = w.SetReturn(ctx, r.SessionID, state, domain.ISODate(ret))
	if err != nil {
		return state, err
	}

	if duration, ok := state.TripDuration(); ok {
		fmt.Fprintf(r.Output, "Trip duration: %s\n", duration)
	}
	return state, nil
}

func (r *Runner) travelersStep(ctx context.Context, w *Wizard, in *bufio.Reader, state domain.State) (domain.State, error) {
	fmt.Fprintln(r.Output, "Step 2: Add Traveler Information")

	for len(state.Travelers) < domain.MaxTravelers {
		next, err := w.Dispatch(ctx, r.SessionID, state, domain.AddTraveler())
		if err != nil {
			return state, err
		}
		index := len(next.Travelers) - 1
		state = next

		name, err := r.prompt(in, fmt.Sprintf("Traveler %d full name: ", index+1))
		if err != nil {
			return state, err
		}
		state, err = w.Dispatch(ctx, r.SessionID, state, domain.UpdateTravelerName(index, name))
		if err != nil {
			return state, err
		}

		ageRaw, err := r.prompt(in, fmt.Sprintf("Traveler %d age: ", index+1))
		if err != nil {
			return state, err
		}
		age, _ := strconv.Atoi(ageRaw)
		state, err = w.Dispatch(ctx, r.SessionID, state, domain.UpdateTravelerAge(index, age))
		if err != nil {
			return state, err
		}

		if len(state.Travelers) == domain.MaxTravelers {
			fmt.Fprintf(r.Output, "Roster full (%d travelers).\n", domain.MaxTravelers)
			break
		}
		more, err := r.prompt(in, "Add another traveler? (y/N) ")
		if err != nil {
			return state, err
		}
		if !strings.EqualFold(more, "y") {
			break
		}
	}
	return state, nil
}

func (r *Runner) reviewStep(ctx context.Context, w *Wizard, in *bufio.Reader, state domain.State) (domain.State, bool, error) {
	fmt.Fprintln(r.Output, "Step 3: Review and Confirm Booking")

	summary := r.summary(ctx, w, state)
	if r.Renderer != nil {
		if rendered, err := r.Renderer(summary); err == nil {
			summary = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(summary))

	answer, err := r.prompt(in, "Confirm booking? (y/N) ")
	if err != nil {
		return state, false, err
	}
	if !strings.EqualFold(answer, "y") {
		return state, false, nil
	}

	conf, err := w.Submit(ctx, r.SessionID, state)
	if err != nil {
		var rejected *domain.RejectedError
		if errors.As(err, &rejected) {
			fmt.Fprintf(r.Output, "Booking failed: %s\n", rejected.Reason)
		} else {
			fmt.Fprintf(r.Output, "Network error. Please try again. (%v)\n", err)
		}
		// State is untouched; the loop re-enters review for a retry.
		return state, false, nil
	}

	fmt.Fprintf(r.Output, "Booking confirmed! Reference: %s\n", conf.BookingID)
	return w.Start(ctx, r.SessionID), true, nil
}

func (r *Runner) summary(ctx context.Context, w *Wizard, state domain.State) string {
	var b strings.Builder
	b.WriteString("# Review Your Booking\n\n")

	if d, err := w.Destination(ctx, state.DestinationID); err == nil {
		fmt.Fprintf(&b, "**Destination:** %s (%s away, about %s)\n\n", d.Name, d.Distance, d.TravelTime)
	} else {
		fmt.Fprintf(&b, "**Destination:** %s\n\n", state.DestinationID)
	}

	fmt.Fprintf(&b, "**Departure:** %s\n\n**Return:** %s\n\n", state.DepartureDate, state.ReturnDate)
	if duration, ok := state.TripDuration(); ok {
		fmt.Fprintf(&b, "**Trip duration:** %s\n\n", duration)
	}

	b.WriteString("## Travelers\n\n")
	for _, t := range state.Travelers {
		fmt.Fprintf(&b, "- %s, age %d\n", t.FullName, t.Age)
	}
	return b.String()
}

func (r *Runner) prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(r.Output, label)
	text, err := in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}
