package runtime

import (
	"context"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// DepartureAction picks the transition for a departure-date edit. Moving
// the departure to a day at or after an already-chosen return date would
// leave an inconsistent pair, so the return date is cleared in the same
// transition; otherwise only the departure changes.
func DepartureAction(state domain.State, date domain.ISODate) domain.Action {
	if !state.ReturnDate.IsZero() && !state.ReturnDate.After(date) {
		return domain.SetDates(date, "")
	}
	return domain.SetStartDate(date)
}

// SetDeparture dispatches the appropriate departure-date transition.
func (e *Engine) SetDeparture(ctx context.Context, sessionID string, state domain.State, date domain.ISODate) (domain.State, error) {
	return e.Dispatch(ctx, sessionID, state, DepartureAction(state, date))
}

// SetReturn dispatches a return-date change. Changing the return date
// never touches the departure date.
func (e *Engine) SetReturn(ctx context.Context, sessionID string, state domain.State, date domain.ISODate) (domain.State, error) {
	return e.Dispatch(ctx, sessionID, state, domain.SetEndDate(date))
}
