package modifier

import (
	"math"

	"pidplus/event"
)

// internalSetpointWriter is satisfied by pidplus.Controller; SetpointRamp
// type-asserts to it rather than importing pidplus, which would cycle
// back to this package.
type internalSetpointWriter interface {
	event.Controller
	SetSetpointInternal(float64) error
}

// SetpointRamp interpolates a setpoint write over secs seconds of
// accumulated dt instead of applying it immediately. Stateful: it must
// be attached to exactly one controller.
type SetpointRamp struct {
	Once

	secs       float64
	hiddenramp bool
	threshold  float64

	ramping  bool
	target   float64
	start    float64
	progress float64
}

// NewSetpointRamp returns a SetpointRamp that interpolates over secs
// seconds. hiddenramp and threshold default to false and 0; use
// NewSetpointRampWithOptions to set them.
func NewSetpointRamp(secs float64) *SetpointRamp {
	return &SetpointRamp{secs: secs}
}

// NewSetpointRampWithOptions returns a SetpointRamp with hiddenramp and
// threshold set explicitly.
func NewSetpointRampWithOptions(secs float64, hiddenramp bool, threshold float64) *SetpointRamp {
	return &SetpointRamp{secs: secs, hiddenramp: hiddenramp, threshold: threshold}
}

// SetSecs changes the ramp duration. If a ramp is in progress, the
// remaining distance is recomputed from the current interpolated value
// toward the unchanged target; a new secs of 0 snaps immediately.
func (m *SetpointRamp) SetSecs(secs float64) {
	if m.ramping {
		m.start = m.currentInterpolated()
		m.progress = 0
	}
	m.secs = secs
}

func (m *SetpointRamp) currentInterpolated() float64 {
	f := m.fraction()
	return m.start + f*(m.target-m.start)
}

func (m *SetpointRamp) fraction() float64 {
	if m.secs == 0 {
		return 1
	}
	return math.Min(1, m.progress/m.secs)
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *SetpointRamp) String() string { return "SetpointRamp" }

// Handle implements modifier.Modifier.
func (m *SetpointRamp) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.SetpointChange:
		return m.onSetpointChange(e)
	case *event.BaseTerms:
		return m.onBaseTerms(e)
	}
	return nil
}

func (m *SetpointRamp) onSetpointChange(e *event.SetpointChange) error {
	if e.Internal() {
		return nil
	}
	if math.Abs(e.SpTo()-e.SpFrom()) <= m.threshold {
		return nil
	}
	m.ramping = true
	m.target = e.SpTo()
	m.start = e.SpFrom()
	m.progress = 0
	if m.hiddenramp {
		// The externally visible setpoint commits to the target right
		// away; only the internal error calc ramps, tick by tick, via
		// the BaseTerms.e override below.
		e.SetSp(e.SpTo())
	}
	return nil
}

func (m *SetpointRamp) onBaseTerms(e *event.BaseTerms) error {
	if !m.ramping {
		return nil
	}
	m.progress += e.Dt()
	interpolated := m.currentInterpolated()
	if m.fraction() >= 1 {
		m.ramping = false
	}

	if m.hiddenramp {
		e.SetE(interpolated - e.Pid().PV())
		return nil
	}

	w, ok := e.Pid().(internalSetpointWriter)
	if !ok {
		return nil
	}
	return w.SetSetpointInternal(interpolated)
}
