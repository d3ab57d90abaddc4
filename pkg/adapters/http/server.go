// Package http exposes the wizard over a JSON API: the destination
// catalog, the authoritative booking endpoint and a per-session wizard
// surface (view/dispatch/submit/reset). It also provides clients for the
// same API implementing the catalog and booking ports.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/booking"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/logging"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/ports"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/session"
)

// Engine is the wizard core as the HTTP layer sees it.
type Engine interface {
	Start(ctx context.Context, sessionID string) domain.State
	Dispatch(ctx context.Context, sessionID string, state domain.State, action domain.Action) (domain.State, error)
	SetDeparture(ctx context.Context, sessionID string, state domain.State, date domain.ISODate) (domain.State, error)
	Resolve(ctx context.Context, sessionID string, state domain.State, requested domain.Step) (domain.Step, bool)
	Submit(ctx context.Context, sessionID string, state domain.State) (*domain.Confirmation, error)
	Status(sessionID string) domain.SubmissionStatus
}

// Server holds the handler dependencies.
type Server struct {
	engine   Engine
	catalog  ports.DestinationCatalog
	bookings ports.BookingService
	sessions *session.Manager
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessions sets the session manager used to serialize mutating calls
// per session ID.
func WithSessions(sessions *session.Manager) Option {
	return func(s *Server) {
		if sessions != nil {
			s.sessions = sessions
		}
	}
}

// NewHandler builds the full HTTP handler.
func NewHandler(engine Engine, catalog ports.DestinationCatalog, bookings ports.BookingService, opts ...Option) http.Handler {
	s := &Server{
		engine:   engine,
		catalog:  catalog,
		bookings: bookings,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/destinations", s.listDestinations)
		r.Post("/bookings", s.createBooking)
		r.Route("/wizard/{sessionID}", func(r chi.Router) {
			r.Get("/view", s.viewStep)
			r.Post("/dispatch", s.dispatch)
			r.Post("/submit", s.submit)
			r.Delete("/", s.reset)
		})
	})

	return enableCORS(r)
}

// withSessionLock serializes fn per session ID when a session manager is
// configured; concurrent requests for different sessions never contend.
func (s *Server) withSessionLock(ctx context.Context, sessionID string, fn func(context.Context)) {
	if s.sessions == nil {
		fn(ctx)
		return
	}
	_ = s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		fn(ctx)
		return nil
	})
}

// viewResponse is what a step render needs: the step that may actually be
// shown, whether the guard turned the request away, and the state.
type viewResponse struct {
	Step       domain.Step             `json:"step"`
	Redirected bool                    `json:"redirected"`
	State      domain.State            `json:"state"`
	Submission domain.SubmissionStatus `json:"submission"`
}

// viewStep handles GET /api/wizard/{sessionID}/view?step=S.
// The guard runs on every call; an unknown or premature step token comes
// back as the destination step with redirected=true, never as an error.
func (s *Server) viewStep(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	raw := r.URL.Query().Get("step")
	if raw == "" {
		raw = string(domain.DefaultStep)
	}

	state := s.engine.Start(r.Context(), sessionID)
	step, redirected := s.engine.Resolve(r.Context(), sessionID, state, domain.Step(raw))

	writeJSON(w, http.StatusOK, viewResponse{
		Step:       step,
		Redirected: redirected,
		State:      state,
		Submission: s.engine.Status(sessionID),
	})
}

// dispatch handles POST /api/wizard/{sessionID}/dispatch with one action.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var action domain.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		s.logger.Warn("dispatch: invalid request body", "err", err)
		writeJSON(w, http.StatusBadRequest, domain.BookingResponse{Success: false, Error: "Invalid request"})
		return
	}

	s.withSessionLock(r.Context(), sessionID, func(ctx context.Context) {
		state := s.engine.Start(ctx, sessionID)

		var (
			next domain.State
			err  error
		)
		// Departure edits go through the navigation rule so a stale return
		// date is cleared in the same transition.
		if action.Type == domain.ActionSetStartDate {
			next, err = s.engine.SetDeparture(ctx, sessionID, state, action.DepartureDate)
		} else {
			next, err = s.engine.Dispatch(ctx, sessionID, state, action)
		}
		if errors.Is(err, domain.ErrSubmissionInFlight) {
			writeJSON(w, http.StatusConflict, domain.BookingResponse{Success: false, Error: "Submission in progress"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]domain.State{"state": next})
	})
}

// submitResponse carries either the confirmation or a recoverable error.
type submitResponse struct {
	Success      bool                 `json:"success"`
	Confirmation *domain.Confirmation `json:"confirmation,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// submit handles POST /api/wizard/{sessionID}/submit.
func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	state := s.engine.Start(r.Context(), sessionID)

	conf, err := s.engine.Submit(r.Context(), sessionID, state)
	if err != nil {
		var rejected *domain.RejectedError
		switch {
		case errors.Is(err, domain.ErrSubmissionInFlight):
			writeJSON(w, http.StatusConflict, submitResponse{Error: "Submission already in progress"})
		case errors.As(err, &rejected):
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Error: rejected.Reason})
		default:
			s.logger.Warn("submit: transport failure", "session_id", sessionID, "err", err)
			writeJSON(w, http.StatusBadGateway, submitResponse{Error: "Network error. Please try again."})
		}
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, Confirmation: conf})
}

// reset handles DELETE /api/wizard/{sessionID}.
func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	s.withSessionLock(r.Context(), sessionID, func(ctx context.Context) {
		state := s.engine.Start(ctx, sessionID)

		if _, err := s.engine.Dispatch(ctx, sessionID, state, domain.Reset()); err != nil {
			writeJSON(w, http.StatusConflict, domain.BookingResponse{Success: false, Error: "Submission in progress"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// listDestinations handles GET /api/destinations.
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.catalog.List(r.Context())
	if err != nil {
		s.logger.Error("destination catalog fetch failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch destinations"})
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

// bookingError is the 400 body of the authoritative endpoint: one
// user-facing message plus the per-field breakdown.
type bookingError struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error"`
	Fields  []booking.FieldError `json:"fields,omitempty"`
}

// createBooking handles POST /api/bookings, the trust boundary.
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("booking: invalid request body", "err", err)
		writeJSON(w, http.StatusBadRequest, bookingError{Error: "Invalid request"})
		return
	}

	if errs := booking.ValidateRequest(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, bookingError{Error: errs[0].Message, Fields: errs})
		return
	}

	resp, err := s.bookings.Book(r.Context(), req)
	if err != nil {
		s.logger.Error("booking service failure", "err", err)
		writeJSON(w, http.StatusInternalServerError, bookingError{Error: "Booking failed. Please try again."})
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("response encode failed", "err", err)
	}
}
