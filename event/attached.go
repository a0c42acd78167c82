package event

// Attached is dispatched once per modifier during PIDPlus construction,
// before the controller's initial conditions are applied. Its pid
// back-reference is valid but the controller is not yet fully
// initialized (setpoint and pv are still their zero values).
type Attached struct {
	pid Controller
}

// NewAttached builds an Attached event for the given controller.
func NewAttached(pid Controller) *Attached {
	return &Attached{pid: pid}
}

// Kind implements Event.
func (e *Attached) Kind() Kind { return KindAttached }

// Pid returns the controller being attached to. Read-only.
func (e *Attached) Pid() Controller { return e.pid }

// Fields implements Event.
func (e *Attached) Fields() []Field {
	return []Field{{Name: "pid", Value: e.pid, Writable: false}}
}

// Clone implements Event. Attached has no writable fields, but every
// event kind carries its own copy for a uniform retention contract.
func (e *Attached) Clone() Event {
	cp := *e
	return &cp
}
