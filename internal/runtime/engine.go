// Package runtime holds the wizard engine: the orchestration around the
// pure domain reducer. It owns the ports (store, catalog, booking service),
// applies actions, persists best-effort, guards step entry and runs the
// submission pipeline.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/logging"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/ports"
)

// Engine drives wizard sessions. All transitions run synchronously to
// completion; the only asynchronous boundary is the booking call inside
// Submit, during which the session's state is frozen.
type Engine struct {
	store   ports.StateStore
	booker  ports.BookingService
	catalog ports.DestinationCatalog
	logger  *slog.Logger
	hooks   domain.LifecycleHooks

	mu     sync.Mutex
	status map[string]domain.SubmissionStatus
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for engine events.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) { e.hooks = hooks }
}

// NewEngine creates an engine with the given collaborators.
func NewEngine(store ports.StateStore, booker ports.BookingService, catalog ports.DestinationCatalog, opts ...EngineOption) *Engine {
	e := &Engine{
		store:   store,
		booker:  booker,
		catalog: catalog,
		logger:  logging.NewNop(),
		status:  make(map[string]domain.SubmissionStatus),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start returns the session's current state: the persisted one when it can
// be read, otherwise the empty initial state. Absent and corrupt records
// are both a "start over", never an error to the caller.
func (e *Engine) Start(ctx context.Context, sessionID string) domain.State {
	state, err := e.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			e.logger.Warn("stored session unreadable, starting fresh",
				"session_id", sessionID, "err", err)
		}
		return domain.NewState()
	}
	if state.Travelers == nil {
		state.Travelers = []domain.Traveler{}
	}
	return state
}

// Dispatch applies one action and persists the result best-effort. While a
// submission is in flight for the session, mutating actions are rejected
// with domain.ErrSubmissionInFlight and the input state is returned.
func (e *Engine) Dispatch(ctx context.Context, sessionID string, state domain.State, action domain.Action) (domain.State, error) {
	if e.Status(sessionID) == domain.SubmissionSubmitting {
		return state, domain.ErrSubmissionInFlight
	}

	next := domain.Reduce(state, action)
	e.persist(ctx, sessionID, next)
	e.hooks.FireTransition(ctx, &domain.TransitionEvent{SessionID: sessionID, Action: action.Type})
	e.logger.Debug("action dispatched", "session_id", sessionID, "action", string(action.Type))
	return next, nil
}

// Resolve is the step guard. It returns the step that may actually be
// rendered: the requested one when its prerequisites hold, otherwise the
// destination step, with redirected=true. A redirect is a navigation
// correction, not an error, and the check is re-derivable from state alone.
func (e *Engine) Resolve(ctx context.Context, sessionID string, state domain.State, requested domain.Step) (step domain.Step, redirected bool) {
	if domain.StepPermitted(state, requested) {
		return requested, false
	}
	e.hooks.FireRedirect(ctx, &domain.RedirectEvent{
		SessionID: sessionID,
		Requested: requested,
		Resolved:  domain.DefaultStep,
	})
	e.logger.Debug("step prerequisites unmet, redirecting",
		"session_id", sessionID, "requested", string(requested))
	return domain.DefaultStep, true
}

// Status reports the session's submission pipeline state.
func (e *Engine) Status(sessionID string) domain.SubmissionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.status[sessionID]; ok {
		return s
	}
	return domain.SubmissionIdle
}

// Submit runs the pipeline idle→submitting→(confirmed|failed). At most one
// submission per session is in flight; a concurrent call fails fast with
// domain.ErrSubmissionInFlight.
//
// On success the wizard state is reset exactly once and the confirmation is
// returned. On rejection or transport failure the state is left untouched
// so the user can correct and resubmit.
func (e *Engine) Submit(ctx context.Context, sessionID string, state domain.State) (*domain.Confirmation, error) {
	if !e.begin(ctx, sessionID) {
		return nil, domain.ErrSubmissionInFlight
	}

	resp, err := e.booker.Book(ctx, domain.RequestFromState(state))
	if err != nil {
		e.settle(ctx, sessionID, domain.SubmissionFailed, "")
		e.logger.Warn("booking transport failure", "session_id", sessionID, "err", err)
		return nil, fmt.Errorf("booking submission: %w", err)
	}
	if !resp.Success {
		e.settle(ctx, sessionID, domain.SubmissionFailed, "")
		e.logger.Info("booking rejected", "session_id", sessionID, "reason", resp.Error)
		return nil, &domain.RejectedError{Reason: resp.Error}
	}

	conf := &domain.Confirmation{
		BookingID:     resp.BookingID,
		Destination:   e.lookupDestination(ctx, state.DestinationID),
		DepartureDate: state.DepartureDate,
		ReturnDate:    state.ReturnDate,
		Travelers:     append([]domain.Traveler(nil), state.Travelers...),
		CreatedAt:     time.Now().UTC(),
	}

	// Reset exactly once, so a fresh booking cannot inherit stale data.
	reset := domain.Reduce(state, domain.Reset())
	e.persist(ctx, sessionID, reset)
	e.hooks.FireTransition(ctx, &domain.TransitionEvent{SessionID: sessionID, Action: domain.ActionReset})

	e.settle(ctx, sessionID, domain.SubmissionConfirmed, resp.BookingID)
	e.logger.Info("booking confirmed", "session_id", sessionID, "booking_id", resp.BookingID)
	return conf, nil
}

// begin moves the session to submitting unless a submission is already in
// flight.
func (e *Engine) begin(ctx context.Context, sessionID string) bool {
	e.mu.Lock()
	if e.status[sessionID] == domain.SubmissionSubmitting {
		e.mu.Unlock()
		return false
	}
	e.status[sessionID] = domain.SubmissionSubmitting
	e.mu.Unlock()

	e.hooks.FireSubmission(ctx, &domain.SubmissionEvent{
		SessionID: sessionID,
		Status:    domain.SubmissionSubmitting,
	})
	return true
}

func (e *Engine) settle(ctx context.Context, sessionID string, status domain.SubmissionStatus, bookingID string) {
	e.mu.Lock()
	e.status[sessionID] = status
	e.mu.Unlock()

	e.hooks.FireSubmission(ctx, &domain.SubmissionEvent{
		SessionID: sessionID,
		Status:    status,
		BookingID: bookingID,
	})
}

// persist writes the state fire-and-forget: a store failure is logged and
// swallowed, never surfaced to the transition that triggered it.
func (e *Engine) persist(ctx context.Context, sessionID string, state domain.State) {
	if err := e.store.Save(ctx, sessionID, state); err != nil {
		e.logger.Warn("state persist failed", "session_id", sessionID, "err", err)
	}
}

func (e *Engine) lookupDestination(ctx context.Context, id domain.DestinationID) domain.Destination {
	if e.catalog != nil {
		if d, err := e.catalog.Get(ctx, id); err == nil {
			return d
		}
	}
	return domain.Destination{ID: id}
}
