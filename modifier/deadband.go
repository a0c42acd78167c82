package modifier

import "pidplus/event"

// DeadBand suppresses small changes in the final control output:
// whenever the new u is within size of the last returned u, it snaps
// back to that last value instead. Stateful: single-attachment.
type DeadBand struct {
	Once

	size float64

	hasLast bool
	lastU   float64
	snapped bool
}

// NewDeadBand returns a DeadBand that holds u steady across changes
// smaller than size.
func NewDeadBand(size float64) *DeadBand {
	return &DeadBand{size: size}
}

// Deadbanded reports whether the most recent tick snapped u back to the
// previous value.
func (m *DeadBand) Deadbanded() bool {
	return m.snapped
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *DeadBand) String() string { return "DeadBand" }

// Handle implements modifier.Modifier.
func (m *DeadBand) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.InitialConditions:
		m.hasLast = false
		m.snapped = false
		return nil
	case *event.CalculateU:
		m.onCalculateU(e)
	}
	return nil
}

func (m *DeadBand) onCalculateU(e *event.CalculateU) {
	u := *e.U()
	if !m.hasLast {
		m.lastU = u
		m.hasLast = true
		m.snapped = false
		return
	}
	diff := u - m.lastU
	if diff < 0 {
		diff = -diff
	}
	if diff < m.size {
		e.SetU(m.lastU)
		m.snapped = true
		return
	}
	m.lastU = u
	m.snapped = false
}
