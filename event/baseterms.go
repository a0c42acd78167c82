package event

// BaseTerms opens a pid() tick. E, P, I and D start nil; a modifier that
// fills one suppresses the matching internal side effect described by
// the controller (the internal i calc would otherwise advance
// Integration, the internal d calc would otherwise update the previous
// pv). Setting U here does not suppress any of those side effects: U is
// just carried forward for ModifyTerms/CalculateU to see early.
type BaseTerms struct {
	pid Controller
	dt  float64
	e   *float64
	p   *float64
	i   *float64
	d   *float64
	u   *float64
	bag *Bag
}

// NewBaseTerms builds a BaseTerms event sharing the given attribute bag.
func NewBaseTerms(pid Controller, dt float64, bag *Bag) *BaseTerms {
	return &BaseTerms{pid: pid, dt: dt, bag: bag}
}

// Kind implements Event.
func (e *BaseTerms) Kind() Kind { return KindBaseTerms }

// Pid returns the controller. Read-only.
func (e *BaseTerms) Pid() Controller { return e.pid }

// Dt returns the tick's time delta. Read-only.
func (e *BaseTerms) Dt() float64 { return e.dt }

// E returns the overridden error term, or nil if unset.
func (e *BaseTerms) E() *float64 { return e.e }

// SetE overrides the error term, suppressing its internal calculation.
func (e *BaseTerms) SetE(v float64) { e.e = &v }

// P returns the overridden proportional term, or nil if unset.
func (e *BaseTerms) P() *float64 { return e.p }

// SetP overrides the proportional term.
func (e *BaseTerms) SetP(v float64) { e.p = &v }

// I returns the overridden integral term, or nil if unset.
func (e *BaseTerms) I() *float64 { return e.i }

// SetI overrides the integral term, suppressing the Integration advance.
func (e *BaseTerms) SetI(v float64) { e.i = &v }

// D returns the overridden derivative term, or nil if unset.
func (e *BaseTerms) D() *float64 { return e.d }

// SetD overrides the derivative term, suppressing the prev-pv update.
func (e *BaseTerms) SetD(v float64) { e.d = &v }

// U returns the overridden control output, or nil if unset.
func (e *BaseTerms) U() *float64 { return e.u }

// SetU overrides the control output ahead of the weighted-sum default.
func (e *BaseTerms) SetU(v float64) { e.u = &v }

// Extra returns the attribute bag shared with ModifyTerms and
// CalculateU for this tick.
func (e *BaseTerms) Extra() *Bag { return e.bag }

// Fields implements Event.
func (e *BaseTerms) Fields() []Field {
	return []Field{
		{Name: "pid", Value: e.pid, Writable: false},
		{Name: "dt", Value: e.dt, Writable: false},
		{Name: "e", Value: derefOrNil(e.e), Writable: true},
		{Name: "p", Value: derefOrNil(e.p), Writable: true},
		{Name: "i", Value: derefOrNil(e.i), Writable: true},
		{Name: "d", Value: derefOrNil(e.d), Writable: true},
		{Name: "u", Value: derefOrNil(e.u), Writable: true},
	}
}

func (e *BaseTerms) setField(name string, value interface{}) error {
	v, _ := value.(float64)
	switch name {
	case "e":
		e.SetE(v)
	case "p":
		e.SetP(v)
	case "i":
		e.SetI(v)
	case "d":
		e.SetD(v)
	case "u":
		e.SetU(v)
	default:
		return fieldNotFound(e, name)
	}
	return nil
}

// Clone implements Event. Each SetX reassigns its field pointer rather
// than mutating through it, so a plain struct copy already isolates the
// clone from any later SetX call on the original; pid and bag remain
// shared references, as they represent live controller/tick state a
// recorded snapshot is still allowed to observe.
func (e *BaseTerms) Clone() Event {
	cp := *e
	return &cp
}
