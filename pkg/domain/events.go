package domain

import "context"

// TransitionEvent fires after an action has been applied.
type TransitionEvent struct {
	SessionID string
	Action    ActionType
}

// RedirectEvent fires when the step guard turns away a requested step.
type RedirectEvent struct {
	SessionID string
	Requested Step
	Resolved  Step
}

// SubmissionEvent fires on every submission pipeline settlement.
type SubmissionEvent struct {
	SessionID string
	Status    SubmissionStatus
	BookingID string
}

// LifecycleHooks lets hosts observe the engine without coupling it to any
// metrics or logging backend. Nil hooks are skipped.
type LifecycleHooks struct {
	OnTransition func(ctx context.Context, e *TransitionEvent)
	OnRedirect   func(ctx context.Context, e *RedirectEvent)
	OnSubmission func(ctx context.Context, e *SubmissionEvent)
}

// FireTransition invokes OnTransition if set.
func (h LifecycleHooks) FireTransition(ctx context.Context, e *TransitionEvent) {
	if h.OnTransition != nil {
		h.OnTransition(ctx, e)
	}
}

// FireRedirect invokes OnRedirect if set.
func (h LifecycleHooks) FireRedirect(ctx context.Context, e *RedirectEvent) {
	if h.OnRedirect != nil {
		h.OnRedirect(ctx, e)
	}
}

// FireSubmission invokes OnSubmission if set.
func (h LifecycleHooks) FireSubmission(ctx context.Context, e *SubmissionEvent) {
	if h.OnSubmission != nil {
		h.OnSubmission(ctx, e)
	}
}
