package wizard

import (
	"context"
	"io"
	"log/slog"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/booking"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/runtime"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/adapters/memory"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/ports"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/session"
)

// Version of the library.
const Version = "0.1.0"

// Wizard bundles the engine with its collaborators. One Wizard serves any
// number of independent sessions, each identified by a session ID.
type Wizard struct {
	store   ports.StateStore
	catalog ports.DestinationCatalog
	booker  ports.BookingService
	locker  ports.DistributedLocker
	logger  *slog.Logger
	hooks   domain.LifecycleHooks

	engine   *runtime.Engine
	sessions *session.Manager
}

// Option configures the Wizard.
type Option func(*Wizard)

// WithStore sets the session persistence backend. Default: in-memory.
func WithStore(store ports.StateStore) Option {
	return func(w *Wizard) { w.store = store }
}

// WithCatalog sets the destination catalog. Default: the built-in one.
func WithCatalog(catalog ports.DestinationCatalog) Option {
	return func(w *Wizard) { w.catalog = catalog }
}

// WithBooker sets the booking collaborator. Default: the local
// authoritative service.
func WithBooker(booker ports.BookingService) Option {
	return func(w *Wizard) { w.booker = booker }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) { w.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Wizard) { w.hooks = hooks }
}

// WithSessionLocker extends session serialization across processes. Without
// it sessions are still serialized within this process.
func WithSessionLocker(locker ports.DistributedLocker) Option {
	return func(w *Wizard) { w.locker = locker }
}

// New initializes a Wizard. With no options it is fully self-contained:
// in-memory persistence, the built-in catalog and the local booking service.
func New(opts ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range opts {
		opt(w)
	}

	if w.store == nil {
		w.store = memory.NewStore()
	}
	if w.catalog == nil {
		w.catalog = memory.NewCatalog()
	}
	if w.booker == nil {
		w.booker = booking.NewService(booking.WithLogger(w.logger))
	}
	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w.engine = runtime.NewEngine(w.store, w.booker, w.catalog,
		runtime.WithLogger(w.logger),
		runtime.WithLifecycleHooks(w.hooks),
	)

	sessionOpts := []session.Option{session.WithLogger(w.logger)}
	if w.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(w.locker))
	}
	w.sessions = session.NewManager(w.store, sessionOpts...)
	return w
}

// Start returns the session's current state, restoring a persisted one
// when available and falling back to the empty initial state.
func (w *Wizard) Start(ctx context.Context, sessionID string) domain.State {
	return w.engine.Start(ctx, sessionID)
}

// Dispatch applies an action to the session's state.
func (w *Wizard) Dispatch(ctx context.Context, sessionID string, state domain.State, action domain.Action) (domain.State, error) {
	return w.engine.Dispatch(ctx, sessionID, state, action)
}

// SetDeparture changes the departure date, clearing a return date the new
// departure would invalidate.
func (w *Wizard) SetDeparture(ctx context.Context, sessionID string, state domain.State, date domain.ISODate) (domain.State, error) {
	return w.engine.SetDeparture(ctx, sessionID, state, date)
}

// SetReturn changes the return date.
func (w *Wizard) SetReturn(ctx context.Context, sessionID string, state domain.State, date domain.ISODate) (domain.State, error) {
	return w.engine.SetReturn(ctx, sessionID, state, date)
}

// Resolve runs the step guard for a requested step.
func (w *Wizard) Resolve(ctx context.Context, sessionID string, state domain.State, requested domain.Step) (domain.Step, bool) {
	return w.engine.Resolve(ctx, sessionID, state, requested)
}

// Submit runs the submission pipeline for the session.
func (w *Wizard) Submit(ctx context.Context, sessionID string, state domain.State) (*domain.Confirmation, error) {
	return w.engine.Submit(ctx, sessionID, state)
}

// Status reports the session's submission pipeline state.
func (w *Wizard) Status(sessionID string) domain.SubmissionStatus {
	return w.engine.Status(sessionID)
}

// Destinations lists the catalog.
func (w *Wizard) Destinations(ctx context.Context) ([]domain.Destination, error) {
	return w.catalog.List(ctx)
}

// Destination resolves one catalog record.
func (w *Wizard) Destination(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	return w.catalog.Get(ctx, id)
}

// Catalog exposes the destination catalog for adapters.
func (w *Wizard) Catalog() ports.DestinationCatalog {
	return w.catalog
}

// Booker exposes the booking collaborator for adapters.
func (w *Wizard) Booker() ports.BookingService {
	return w.booker
}

// Sessions exposes the session manager, so hosts handling concurrent
// callers can serialize access per session ID.
func (w *Wizard) Sessions() *session.Manager {
	return w.sessions
}
