package modifier

import "pidplus/event"

// ISetpointReset zeroes the integral whenever the setpoint changes, then
// freezes accumulation for delaySecs worth of dt so the controller
// settles before integral action resumes. Stateful: single-attachment.
type ISetpointReset struct {
	Once

	delaySecs      float64
	pauseRemaining float64
}

// NewISetpointReset returns an ISetpointReset that pauses integration
// for delaySecs after every setpoint change.
func NewISetpointReset(delaySecs float64) *ISetpointReset {
	return &ISetpointReset{delaySecs: delaySecs}
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *ISetpointReset) String() string { return "ISetpointReset" }

// Handle implements modifier.Modifier.
func (m *ISetpointReset) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.SetpointChange:
		e.Pid().SetIntegration(0)
		m.pauseRemaining = m.delaySecs
		return nil
	case *event.BaseTerms:
		if m.pauseRemaining > 0 {
			e.SetI(e.Pid().Integration())
			m.pauseRemaining -= e.Dt()
			if m.pauseRemaining < 0 {
				m.pauseRemaining = 0
			}
		}
		return nil
	}
	return nil
}
