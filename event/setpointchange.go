package event

// SetpointChange is dispatched before a PIDPlus's setpoint is stored,
// whether from an explicit setpoint= write or synthesized internally by
// a modifier (SetpointRamp re-issues it with the interpolated value for
// history/print observers). Sp is the one read-write field: if a
// modifier sets it, that value wins over SpTo once dispatch completes.
type SetpointChange struct {
	pid      Controller
	spFrom   float64
	spTo     float64
	sp       *float64
	internal bool
}

// NewSetpointChange builds a SetpointChange event. internal marks a
// synthetic re-emission (used by SetpointRamp) so that the modifier
// which emitted it can recognize and ignore its own echo.
func NewSetpointChange(pid Controller, spFrom, spTo float64, internal bool) *SetpointChange {
	return &SetpointChange{pid: pid, spFrom: spFrom, spTo: spTo, internal: internal}
}

// Kind implements Event.
func (e *SetpointChange) Kind() Kind { return KindSetpointChange }

// Pid returns the controller. Read-only.
func (e *SetpointChange) Pid() Controller { return e.pid }

// SpFrom returns the setpoint value before this change. Read-only.
func (e *SetpointChange) SpFrom() float64 { return e.spFrom }

// SpTo returns the requested new setpoint value. Read-only.
func (e *SetpointChange) SpTo() float64 { return e.spTo }

// Sp returns the overriding setpoint value a modifier has set, or nil.
func (e *SetpointChange) Sp() *float64 { return e.sp }

// SetSp overrides the setpoint value that will actually be stored.
func (e *SetpointChange) SetSp(v float64) { e.sp = &v }

// Internal reports whether this event is a synthetic re-emission from a
// modifier (e.g. SetpointRamp) rather than a caller-initiated write.
func (e *SetpointChange) Internal() bool { return e.internal }

// Resolved returns the setpoint value that should actually be stored:
// Sp if a modifier set it, otherwise SpTo.
func (e *SetpointChange) Resolved() float64 {
	if e.sp != nil {
		return *e.sp
	}
	return e.spTo
}

// Fields implements Event.
func (e *SetpointChange) Fields() []Field {
	return []Field{
		{Name: "pid", Value: e.pid, Writable: false},
		{Name: "sp_from", Value: e.spFrom, Writable: false},
		{Name: "sp_to", Value: e.spTo, Writable: false},
		{Name: "sp", Value: derefOrNil(e.sp), Writable: true},
	}
}

func (e *SetpointChange) setField(name string, value interface{}) error {
	if name == "sp" {
		e.SetSp(value.(float64))
		return nil
	}
	return fieldNotFound(e, name)
}

// Clone implements Event. Sp is a field pointer that SetSp reassigns
// rather than mutates through, so a plain struct copy already isolates
// the clone from any later SetSp call on the original.
func (e *SetpointChange) Clone() Event {
	cp := *e
	return &cp
}
