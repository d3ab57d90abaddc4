package ports

import (
	"context"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// BookingService is the external collaborator that accepts or rejects a
// completed booking. It is the trust boundary: its validation is
// authoritative, and a rejection despite local validation passing is a
// normal, recoverable outcome (Success=false, no error).
//
// A non-nil error means transport failure; the response is then meaningless.
type BookingService interface {
	Book(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error)
}
