package booking_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/booking"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		DestinationID: domain.DestinationMars,
		DepartureDate: "2147-03-10",
		ReturnDate:    "2147-03-15",
		Travelers:     []domain.Traveler{{FullName: "Ada Lovelace", Age: 36}},
	}
}

func fieldMessages(errs []booking.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.Empty(t, booking.ValidateRequest(validRequest()))
}

func TestValidateRequest_MissingFields(t *testing.T) {
	errs := booking.ValidateRequest(domain.BookingRequest{Travelers: []domain.Traveler{{FullName: "Ada", Age: 36}}})
	msgs := fieldMessages(errs)
	assert.Equal(t, "Missing required fields", msgs["destinationId"])
	assert.Equal(t, "Missing required fields", msgs["departureDate"])
	assert.Equal(t, "Missing required fields", msgs["returnDate"])
}

func TestValidateRequest_DateOrdering(t *testing.T) {
	req := validRequest()
	req.ReturnDate = req.DepartureDate
	msgs := fieldMessages(booking.ValidateRequest(req))
	assert.Equal(t, "Return date must be after departure date", msgs["returnDate"])

	req.ReturnDate = "2147-03-01"
	msgs = fieldMessages(booking.ValidateRequest(req))
	assert.Equal(t, "Return date must be after departure date", msgs["returnDate"])
}

func TestValidateRequest_TravelerCount(t *testing.T) {
	req := validRequest()
	req.Travelers = []domain.Traveler{}
	msgs := fieldMessages(booking.ValidateRequest(req))
	assert.Equal(t, "Must have between 1 and 5 travelers", msgs["travelers"])

	req.Travelers = make([]domain.Traveler, domain.MaxTravelers+1)
	for i := range req.Travelers {
		req.Travelers[i] = domain.Traveler{FullName: "Crew", Age: 30}
	}
	msgs = fieldMessages(booking.ValidateRequest(req))
	assert.Equal(t, "Must have between 1 and 5 travelers", msgs["travelers"])
}

func TestValidateRequest_TravelerFields(t *testing.T) {
	req := validRequest()
	req.Travelers = []domain.Traveler{
		{FullName: "Ada Lovelace", Age: 36},
		{FullName: "   ", Age: 36},
		{FullName: "Grace Hopper", Age: 0},
		{FullName: "Methuselah", Age: domain.MaxAge + 1},
	}
	msgs := fieldMessages(booking.ValidateRequest(req))
	assert.Equal(t, "All travelers must have a name", msgs["travelers[1].fullName"])
	assert.Equal(t, "All travelers must have a valid age", msgs["travelers[2].age"])
	assert.Equal(t, "All travelers must have a valid age", msgs["travelers[3].age"])
	assert.NotContains(t, msgs, "travelers[0].fullName")
	assert.NotContains(t, msgs, "travelers[0].age")
}

func TestBook_Success(t *testing.T) {
	svc := booking.NewService()
	resp, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.BookingID, "BK"), "booking id %q", resp.BookingID)
	assert.Len(t, resp.BookingID, 9)
	assert.Equal(t, resp.BookingID, strings.ToUpper(resp.BookingID))
}

func TestBook_RejectionCarriesFirstMessage(t *testing.T) {
	svc := booking.NewService()
	resp, err := svc.Book(context.Background(), domain.BookingRequest{})
	require.NoError(t, err, "a rejection is a response, not an error")
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields", resp.Error)
	assert.Empty(t, resp.BookingID)
}

func TestBook_CancelledDuringLatency(t *testing.T) {
	svc := booking.NewService(booking.WithLatency(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Book(ctx, validRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBookingID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := booking.NewBookingID()
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
