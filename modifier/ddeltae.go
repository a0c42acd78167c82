package modifier

import "pidplus/event"

// DDeltaE replaces derivative-on-measurement with derivative-on-error:
// d = (e - prev_e)/dt, overriding the controller's internal
// derivative-on-measurement calculation (and its prev_pv side effect)
// every tick. With kickfilter, a tick whose error jumped because the
// setpoint itself just changed reports d=0 instead of the spike that a
// raw derivative-on-error would otherwise produce, and primes the
// reference so the following tick's derivative is accurate again.
// Stateful: single-attachment.
type DDeltaE struct {
	Once

	kickfilter bool

	hasPrevE bool
	prevE    float64
	kicked   bool
}

// NewDDeltaE returns a DDeltaE modifier. kickfilter enables the
// setpoint-change spike suppression described above.
func NewDDeltaE(kickfilter bool) *DDeltaE {
	return &DDeltaE{kickfilter: kickfilter}
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *DDeltaE) String() string { return "DDeltaE" }

// Handle implements modifier.Modifier.
func (m *DDeltaE) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.SetpointChange:
		if m.kickfilter && !e.Internal() {
			m.kicked = true
		}
		return nil
	case *event.BaseTerms:
		m.onBaseTerms(e)
	}
	return nil
}

func (m *DDeltaE) onBaseTerms(e *event.BaseTerms) {
	cur := e.E()
	var curVal float64
	if cur != nil {
		curVal = *cur
	} else {
		curVal = e.Pid().Setpoint() - e.Pid().PV()
	}

	if !m.hasPrevE {
		e.SetD(0)
		m.prevE = curVal
		m.hasPrevE = true
		return
	}

	if m.kickfilter && m.kicked {
		e.SetD(0)
		m.kicked = false
		m.prevE = curVal
		return
	}

	e.SetD((curVal - m.prevE) / e.Dt())
	m.prevE = curVal
}
