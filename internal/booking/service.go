// Package booking implements the authoritative booking collaborator: full
// request validation with per-field errors and booking ID issuance. The
// client-side predicates in pkg/domain mirror these rules for immediate
// feedback, but this service is the trust boundary.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/logging"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// FieldError pins a validation failure to the offending field, so the
// caller can highlight it rather than show one opaque message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRequest enumerates every rule violation in the request. An empty
// result means the request is bookable.
func ValidateRequest(req domain.BookingRequest) []FieldError {
	var errs []FieldError

	if req.DestinationID == "" {
		errs = append(errs, FieldError{Field: "destinationId", Message: "Missing required fields"})
	}
	if req.DepartureDate.IsZero() {
		errs = append(errs, FieldError{Field: "departureDate", Message: "Missing required fields"})
	}
	if req.ReturnDate.IsZero() {
		errs = append(errs, FieldError{Field: "returnDate", Message: "Missing required fields"})
	}
	if !req.DepartureDate.IsZero() && !req.ReturnDate.IsZero() && !req.ReturnDate.After(req.DepartureDate) {
		errs = append(errs, FieldError{Field: "returnDate", Message: "Return date must be after departure date"})
	}

	if len(req.Travelers) < domain.MinTravelers || len(req.Travelers) > domain.MaxTravelers {
		errs = append(errs, FieldError{
			Field:   "travelers",
			Message: fmt.Sprintf("Must have between %d and %d travelers", domain.MinTravelers, domain.MaxTravelers),
		})
	}
	for i, t := range req.Travelers {
		if strings.TrimSpace(t.FullName) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("travelers[%d].fullName", i),
				Message: "All travelers must have a name",
			})
		}
		if t.Age < domain.MinAge || t.Age > domain.MaxAge {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("travelers[%d].age", i),
				Message: "All travelers must have a valid age",
			})
		}
	}
	return errs
}

// Service implements ports.BookingService locally.
type Service struct {
	latency time.Duration
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLatency simulates upstream processing time. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

// WithLogger sets a structured logger for booking decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates the local booking service.
func NewService(opts ...Option) *Service {
	s := &Service{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book validates and accepts or rejects the request. A rejection is a
// normal response carrying the first violation's message; only transport
// concerns (here: ctx cancellation during simulated latency) return an error.
func (s *Service) Book(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error) {
	if errs := ValidateRequest(req); len(errs) > 0 {
		s.logger.Info("booking rejected",
			"field", errs[0].Field, "reason", errs[0].Message, "violations", len(errs))
		return domain.BookingResponse{Success: false, Error: errs[0].Message}, nil
	}

	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return domain.BookingResponse{}, ctx.Err()
		case <-time.After(s.latency):
		}
	}

	id := NewBookingID()
	s.logger.Info("booking accepted",
		"booking_id", id,
		"destination", string(req.DestinationID),
		"travelers", len(req.Travelers))
	return domain.BookingResponse{Success: true, BookingID: id}, nil
}

// NewBookingID issues a "BK"-prefixed identifier, seven uppercase
// hex characters drawn from a fresh UUID.
func NewBookingID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK" + raw[:7]
}
