package modifier

import (
	"math"

	"pidplus/event"
	"pidplus/interplut"
)

// DGainSchedule scales the derivative term by a factor read off an
// interplut.InterpLUT keyed on |e|, letting the effective derivative
// gain vary across the operating range instead of staying fixed.
// Stateful: single-attachment, since the LUT is shared controller state
// in spirit even though its values never change after construction.
type DGainSchedule struct {
	Once

	lut *interplut.InterpLUT
}

// NewDGainSchedule returns a DGainSchedule reading its scale factor from
// lut, which must already have had CreateLUT called on it.
func NewDGainSchedule(lut *interplut.InterpLUT) *DGainSchedule {
	return &DGainSchedule{lut: lut}
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *DGainSchedule) String() string { return "DGainSchedule" }

// Handle implements modifier.Modifier.
func (m *DGainSchedule) Handle(ev event.Event) error {
	switch e := ev.(type) {
	case *event.Attached:
		return m.Check(e.Pid())
	case *event.ModifyTerms:
		scale, err := m.lut.Get(math.Abs(e.E()))
		if err != nil {
			return err
		}
		e.SetD(*e.D() * scale)
	}
	return nil
}
