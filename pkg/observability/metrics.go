// Package observability wires the engine's lifecycle hooks to Prometheus.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// Metrics holds the wizard's Prometheus collectors.
type Metrics struct {
	transitions *prometheus.CounterVec
	redirects   *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wizard_transitions_total",
			Help: "Total wizard actions applied, by action type.",
		}, []string{"action"}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wizard_step_redirects_total",
			Help: "Step guard redirects, by requested step.",
		}, []string{"requested"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wizard_submissions_total",
			Help: "Submission pipeline settlements, by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.transitions, m.redirects, m.submissions)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.Action)).Inc()
		},
		OnRedirect: func(ctx context.Context, e *domain.RedirectEvent) {
			m.redirects.WithLabelValues(string(e.Requested)).Inc()
		},
		OnSubmission: func(ctx context.Context, e *domain.SubmissionEvent) {
			m.submissions.WithLabelValues(string(e.Status)).Inc()
		},
	}
}
