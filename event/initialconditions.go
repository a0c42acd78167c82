package event

// InitialConditions is dispatched once after initial_conditions mutates
// the controller: once at construction (pv=0, setpoint=0) and again for
// every explicit initial_conditions call thereafter. All fields are
// read-only; pv and setpoint are nil when that parameter was not
// supplied to the initial_conditions call that triggered this event.
type InitialConditions struct {
	pid      Controller
	setpoint *float64
	pv       *float64
}

// NewInitialConditions builds an InitialConditions event.
func NewInitialConditions(pid Controller, setpoint, pv *float64) *InitialConditions {
	return &InitialConditions{pid: pid, setpoint: setpoint, pv: pv}
}

// Kind implements Event.
func (e *InitialConditions) Kind() Kind { return KindInitialConditions }

// Pid returns the controller. Read-only.
func (e *InitialConditions) Pid() Controller { return e.pid }

// Setpoint returns the setpoint argument passed to initial_conditions,
// or nil if it was not supplied. Read-only.
func (e *InitialConditions) Setpoint() *float64 { return e.setpoint }

// PV returns the pv argument passed to initial_conditions, or nil if it
// was not supplied. Read-only.
func (e *InitialConditions) PV() *float64 { return e.pv }

// Fields implements Event.
func (e *InitialConditions) Fields() []Field {
	return []Field{
		{Name: "pid", Value: e.pid, Writable: false},
		{Name: "setpoint", Value: derefOrNil(e.setpoint), Writable: false},
		{Name: "pv", Value: derefOrNil(e.pv), Writable: false},
	}
}

// Clone implements Event. All fields are read-only, but every event kind
// carries its own copy for a uniform retention contract.
func (e *InitialConditions) Clone() Event {
	cp := *e
	return &cp
}

func derefOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
