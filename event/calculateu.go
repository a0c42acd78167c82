package event

// CalculateU is the final stage of a pid() tick. By the time it is
// dispatched, U has been filled with the default weighted sum if no
// earlier stage supplied one; modifiers here (DeadBand, BangBang) see
// and may still override the final output.
type CalculateU struct {
	pid Controller
	dt  float64
	e   float64
	p   float64
	i   float64
	d   float64
	u   *float64
	bag *Bag
}

// NewCalculateU builds a CalculateU event sharing the tick's bag.
func NewCalculateU(pid Controller, dt, e, p, i, d float64, u *float64, bag *Bag) *CalculateU {
	return &CalculateU{pid: pid, dt: dt, e: e, p: p, i: i, d: d, u: u, bag: bag}
}

// Kind implements Event.
func (e *CalculateU) Kind() Kind { return KindCalculateU }

// Pid returns the controller. Read-only.
func (e *CalculateU) Pid() Controller { return e.pid }

// Dt returns the tick's time delta. Read-only.
func (e *CalculateU) Dt() float64 { return e.dt }

// E returns the tick's error term. Read-only.
func (e *CalculateU) E() float64 { return e.e }

// P returns the tick's proportional term. Read-only.
func (e *CalculateU) P() float64 { return e.p }

// I returns the tick's integral term. Read-only.
func (e *CalculateU) I() float64 { return e.i }

// D returns the tick's derivative term. Read-only.
func (e *CalculateU) D() float64 { return e.d }

// U returns the control output, filled with the default weighted sum
// unless an earlier stage already supplied one.
func (e *CalculateU) U() *float64 { return e.u }

// SetU overrides the final control output returned from pid().
func (e *CalculateU) SetU(v float64) { e.u = &v }

// Extra returns the attribute bag shared with BaseTerms and ModifyTerms.
func (e *CalculateU) Extra() *Bag { return e.bag }

// Fields implements Event.
func (e *CalculateU) Fields() []Field {
	return []Field{
		{Name: "pid", Value: e.pid, Writable: false},
		{Name: "dt", Value: e.dt, Writable: false},
		{Name: "e", Value: e.e, Writable: false},
		{Name: "p", Value: e.p, Writable: false},
		{Name: "i", Value: e.i, Writable: false},
		{Name: "d", Value: e.d, Writable: false},
		{Name: "u", Value: derefOrNil(e.u), Writable: true},
	}
}

func (e *CalculateU) setField(name string, value interface{}) error {
	if name == "u" {
		e.SetU(value.(float64))
		return nil
	}
	return fieldNotFound(e, name)
}

// Clone implements Event. SetU reassigns its field pointer rather than
// mutating through it, so a plain struct copy already isolates the
// clone from any later SetU call on the original.
func (e *CalculateU) Clone() Event {
	cp := *e
	return &cp
}
