package modifier

import (
	"pidplus/event"
	"pidplus/filter"
)

// DerivativeFilter smooths the derivative term with a filter.Filter
// (LowPass or Kalman) before it reaches the weighted sum. It reads
// whatever derivative entered ModifyTerms — the internal derivative-on-
// measurement unless an earlier modifier already overrode it — rather
// than computing its own, so it composes with D_DeltaE and D_GainSchedule
// by ordering. Stateful: single-attachment.
type DerivativeFilter struct {
	Once

	filt filter.Filter
}

// NewDerivativeFilter returns a DerivativeFilter smoothing through filt.
func NewDerivativeFilter(filt filter.Filter) *DerivativeFilter {
	return &DerivativeFilter{filt: filt}
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *DerivativeFilter) String() string { return "DerivativeFilter" }

// Handle implements modifier.Modifier.
func (m *DerivativeFilter) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.InitialConditions:
		m.filt.Reset()
	case *event.ModifyTerms:
		e.SetD(m.filt.Estimate(*e.D()))
	}
	return nil
}
