package modifier

import "pidplus/event"

// FeedForwardCalculator is satisfied by *feedforward.FeedForward and
// *feedforward.NoFeedForward.
type FeedForwardCalculator interface {
	Calculate(position, velocity, acceleration float64) float64
}

// FeedForwardTerm adds a feedforward contribution to the final control
// output, computed from a reference trajectory the caller supplies via
// SetReference ahead of each tick (the event pipeline has no position/
// velocity/acceleration fields of its own to read these from). Stateful:
// single-attachment.
type FeedForwardTerm struct {
	Once

	ff                                FeedForwardCalculator
	position, velocity, acceleration float64
}

// NewFeedForwardTerm returns a FeedForwardTerm driven by ff.
func NewFeedForwardTerm(ff FeedForwardCalculator) *FeedForwardTerm {
	return &FeedForwardTerm{ff: ff}
}

// SetReference updates the trajectory point fed to ff.Calculate on the
// next tick.
func (m *FeedForwardTerm) SetReference(position, velocity, acceleration float64) {
	m.position, m.velocity, m.acceleration = position, velocity, acceleration
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *FeedForwardTerm) String() string { return "FeedForwardTerm" }

// Handle implements modifier.Modifier.
func (m *FeedForwardTerm) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.CalculateU:
		e.SetU(*e.U() + m.ff.Calculate(m.position, m.velocity, m.acceleration))
	}
	return nil
}
