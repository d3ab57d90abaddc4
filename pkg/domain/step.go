package domain

// Step names one of the three wizard screens. The set is closed: any other
// token fails the step guard.
type Step string

const (
	StepDestination Step = "destination"
	StepTravelers   Step = "travelers"
	StepReview      Step = "review"
)

// DefaultStep is the unconditionally valid entry point. Sequencing
// violations redirect here instead of erroring.
const DefaultStep = StepDestination

// Steps lists the wizard screens in visiting order.
func Steps() []Step {
	return []Step{StepDestination, StepTravelers, StepReview}
}

// ParseStep maps a raw token to a known step. ok is false for anything
// outside the closed set, including the empty string.
func ParseStep(raw string) (Step, bool) {
	switch Step(raw) {
	case StepDestination, StepTravelers, StepReview:
		return Step(raw), true
	}
	return "", false
}
