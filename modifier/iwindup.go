package modifier

import "pidplus/event"

// IWindup clamps the integral term into [lo, hi] on every ModifyTerms,
// and writes the same clamped value back to the controller's stored
// integration so later ticks accumulate from the clamped value rather
// than silently drifting past it. Stateless; freely shareable.
type IWindup struct {
	lo, hi float64
}

// NewIWindup clamps into [-|limit|, |limit|].
func NewIWindup(limit float64) *IWindup {
	if limit < 0 {
		limit = -limit
	}
	return &IWindup{lo: -limit, hi: limit}
}

// NewIWindupRange clamps into [lo, hi], sorting the pair if given in
// reverse.
func NewIWindupRange(lo, hi float64) *IWindup {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &IWindup{lo: lo, hi: hi}
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *IWindup) String() string { return "IWindup" }

// Handle implements modifier.Modifier.
func (m *IWindup) Handle(ev event.Event) error {
	e, ok := ev.(*event.ModifyTerms)
	if !ok {
		return nil
	}
	clamped := clamp(*e.I(), m.lo, m.hi)
	e.SetI(clamped)
	e.Pid().SetIntegration(clamped)
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
