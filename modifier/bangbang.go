package modifier

import "pidplus/event"

// BangBang replaces the continuous control output with one of a small
// set of discrete values based on threshold crossings. Stateless; freely
// shareable across controllers.
type BangBang struct {
	onThreshold  *float64
	offThreshold *float64
	onValue      float64
	offValue     float64
	deadValue    *float64
}

// BangBangOption configures a BangBang at construction time.
type BangBangOption func(*BangBang)

// NewBangBang returns a BangBang with on_threshold=0, off_threshold=0,
// on_value=1, off_value=0 and no dead_value, as modified by opts.
func NewBangBang(opts ...BangBangOption) *BangBang {
	on, off := 0.0, 0.0
	m := &BangBang{onThreshold: &on, offThreshold: &off, onValue: 1, offValue: 0}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithOnThreshold sets the ON classification threshold, or clears it
// when passed nil.
func WithOnThreshold(v *float64) BangBangOption {
	return func(m *BangBang) { m.onThreshold = v }
}

// WithOffThreshold sets the OFF classification threshold, or clears it
// when passed nil.
func WithOffThreshold(v *float64) BangBangOption {
	return func(m *BangBang) { m.offThreshold = v }
}

// WithOnValue sets the value substituted when u classifies as ON.
func WithOnValue(v float64) BangBangOption {
	return func(m *BangBang) { m.onValue = v }
}

// WithOffValue sets the value substituted when u classifies as OFF.
func WithOffValue(v float64) BangBangOption {
	return func(m *BangBang) { m.offValue = v }
}

// WithDeadValue sets the value substituted when u falls in the dead
// band between off_threshold and on_threshold; nil (the default) leaves
// u unchanged in that case.
func WithDeadValue(v float64) BangBangOption {
	return func(m *BangBang) { m.deadValue = &v }
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *BangBang) String() string { return "BangBang" }

// Handle implements modifier.Modifier.
func (m *BangBang) Handle(ev event.Event) error {
	e, ok := ev.(*event.CalculateU)
	if !ok {
		return nil
	}
	e.SetU(m.classify(*e.U()))
	return nil
}

func (m *BangBang) classify(u float64) float64 {
	switch {
	case m.offThreshold == nil && m.onThreshold != nil:
		if u >= *m.onThreshold {
			return m.onValue
		}
		return u
	case m.onThreshold == nil && m.offThreshold != nil:
		if u <= *m.offThreshold {
			return m.offValue
		}
		return u
	case m.onThreshold != nil && m.offThreshold != nil:
		if u >= *m.onThreshold {
			return m.onValue
		}
		if u <= *m.offThreshold {
			return m.offValue
		}
		if m.deadValue != nil {
			return *m.deadValue
		}
		return u
	default:
		return u
	}
}
