package modifier

import (
	"pidplus/event"
	"pidplus/feedback"
)

// FeedbackTerm adds a full-state feedback contribution to the final
// control output, computed from the setpoint/measurement state vectors
// (position, velocity, ...) the caller supplies via SetState ahead of
// each tick — the event pipeline only carries the scalar position error
// the base PID terms already consumed, not the rest of the state a
// motion profile tracks. Useful alongside FeedForwardTerm: feedforward
// cancels the known dynamics of the reference trajectory, FullState
// feedback corrects for the plant's deviation from that trajectory's
// higher derivatives. Stateful: single-attachment.
type FeedbackTerm struct {
	Once

	fsf                   *feedback.FullStateFeedback
	setpoint, measurement feedback.Values
}

// NewFeedbackTerm returns a FeedbackTerm driven by fsf.
func NewFeedbackTerm(fsf *feedback.FullStateFeedback) *FeedbackTerm {
	return &FeedbackTerm{fsf: fsf}
}

// SetState updates the setpoint/measurement state vectors fed to
// fsf.Calculate on the next tick. Both must be the same length as fsf's
// configured gain vector; until the first call, Handle contributes
// nothing.
func (m *FeedbackTerm) SetState(setpoint, measurement feedback.Values) {
	m.setpoint, m.measurement = setpoint, measurement
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *FeedbackTerm) String() string { return "FeedbackTerm" }

// Handle implements modifier.Modifier.
func (m *FeedbackTerm) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.CalculateU:
		if m.setpoint == nil {
			return nil
		}
		u, err := m.fsf.Calculate(m.setpoint, m.measurement)
		if err != nil {
			return err
		}
		e.SetU(*e.U() + u)
	}
	return nil
}
