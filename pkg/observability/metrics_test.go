package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

func TestMetricsHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.FireTransition(ctx, &domain.TransitionEvent{SessionID: "s", Action: domain.ActionAddTraveler})
	hooks.FireTransition(ctx, &domain.TransitionEvent{SessionID: "s", Action: domain.ActionAddTraveler})
	hooks.FireRedirect(ctx, &domain.RedirectEvent{SessionID: "s", Requested: domain.StepReview, Resolved: domain.StepDestination})
	hooks.FireSubmission(ctx, &domain.SubmissionEvent{SessionID: "s", Status: domain.SubmissionConfirmed})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) != 3 {
		t.Errorf("gathered %d metric families, want 3", len(families))
	}

	if got := testutil.ToFloat64(m.transitions.WithLabelValues(string(domain.ActionAddTraveler))); got != 2 {
		t.Errorf("transitions{ADD_TRAVELER} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.redirects.WithLabelValues(string(domain.StepReview))); got != 1 {
		t.Errorf("redirects{review} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues(string(domain.SubmissionConfirmed))); got != 1 {
		t.Errorf("submissions{confirmed} = %v, want 1", got)
	}
}

func TestNewMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("double registration should panic")
		}
	}()
	NewMetrics(reg)
}
