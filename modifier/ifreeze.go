package modifier

import "pidplus/event"

// IFreeze suspends integral accumulation on demand: while frozen, every
// BaseTerms supplies the controller's current integration unchanged,
// suppressing the internal accumulation. A duration counts down in
// units of dt; an indefinite freeze (duration omitted) lasts until
// Unfreeze. Stateful: single-attachment.
type IFreeze struct {
	Once

	frozen   bool
	duration *float64
}

// NewIFreeze returns an unfrozen IFreeze modifier.
func NewIFreeze() *IFreeze {
	return &IFreeze{}
}

// Freeze suspends integration. A nil duration freezes indefinitely;
// otherwise the freeze lifts automatically after that many seconds of
// accumulated dt.
func (m *IFreeze) Freeze(duration *float64) {
	m.frozen = true
	m.duration = duration
}

// Unfreeze resumes integration immediately.
func (m *IFreeze) Unfreeze() {
	m.frozen = false
	m.duration = nil
}

// State reports whether integration is currently suspended.
func (m *IFreeze) State() bool {
	return m.frozen
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *IFreeze) String() string { return "IFreeze" }

// Handle implements modifier.Modifier.
func (m *IFreeze) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.BaseTerms:
		if !m.frozen {
			return nil
		}
		e.SetI(e.Pid().Integration())
		if m.duration != nil {
			*m.duration -= e.Dt()
			if *m.duration <= 0 {
				m.frozen = false
				m.duration = nil
			}
		}
	}
	return nil
}
