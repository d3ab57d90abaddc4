package domain

import "time"

// BookingRequest is the submission payload sent to the booking service.
// It is built verbatim from the wizard state at submit time.
type BookingRequest struct {
	DestinationID DestinationID `json:"destinationId"`
	DepartureDate ISODate       `json:"departureDate"`
	ReturnDate    ISODate       `json:"returnDate"`
	Travelers     []Traveler    `json:"travelers"`
}

// RequestFromState packages the current wizard state for submission.
func RequestFromState(s State) BookingRequest {
	ts := make([]Traveler, len(s.Travelers))
	copy(ts, s.Travelers)
	return BookingRequest{
		DestinationID: s.DestinationID,
		DepartureDate: s.DepartureDate,
		ReturnDate:    s.ReturnDate,
		Travelers:     ts,
	}
}

// BookingResponse is the booking service's answer. Success carries a
// booking ID; rejection carries a user-facing error message. A rejection
// is a normal response, not a transport failure.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SubmissionStatus tracks the submission pipeline for one session.
type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionConfirmed  SubmissionStatus = "confirmed"
	SubmissionFailed     SubmissionStatus = "failed"
)

// Confirmation is a confirmed booking with the catalog record resolved,
// handed to the presentation layer after a successful submission.
type Confirmation struct {
	BookingID     string      `json:"bookingId"`
	Destination   Destination `json:"destination"`
	DepartureDate ISODate     `json:"departureDate"`
	ReturnDate    ISODate     `json:"returnDate"`
	Travelers     []Traveler  `json:"travelers"`
	CreatedAt     time.Time   `json:"createdAt"`
}
