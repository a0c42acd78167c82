package event

// ModifyTerms follows BaseTerms once e, p, i and d are all non-nil. U may
// already carry a value from BaseTerms; if still nil after this stage,
// the controller computes the default weighted sum before CalculateU.
type ModifyTerms struct {
	pid Controller
	dt  float64
	e   float64
	p   *float64
	i   *float64
	d   *float64
	u   *float64
	bag *Bag
}

// NewModifyTerms builds a ModifyTerms event sharing the tick's bag.
func NewModifyTerms(pid Controller, dt, e float64, p, i, d, u *float64, bag *Bag) *ModifyTerms {
	return &ModifyTerms{pid: pid, dt: dt, e: e, p: p, i: i, d: d, u: u, bag: bag}
}

// Kind implements Event.
func (e *ModifyTerms) Kind() Kind { return KindModifyTerms }

// Pid returns the controller. Read-only.
func (e *ModifyTerms) Pid() Controller { return e.pid }

// Dt returns the tick's time delta. Read-only.
func (e *ModifyTerms) Dt() float64 { return e.dt }

// E returns the error computed (or overridden) during BaseTerms. Read-only.
func (e *ModifyTerms) E() float64 { return e.e }

// P returns the proportional term.
func (e *ModifyTerms) P() *float64 { return e.p }

// SetP overrides the proportional term.
func (e *ModifyTerms) SetP(v float64) { e.p = &v }

// I returns the integral term.
func (e *ModifyTerms) I() *float64 { return e.i }

// SetI overrides the integral term.
func (e *ModifyTerms) SetI(v float64) { e.i = &v }

// D returns the derivative term.
func (e *ModifyTerms) D() *float64 { return e.d }

// SetD overrides the derivative term.
func (e *ModifyTerms) SetD(v float64) { e.d = &v }

// U returns the overridden control output, or nil if unset.
func (e *ModifyTerms) U() *float64 { return e.u }

// SetU overrides the control output ahead of the weighted-sum default.
func (e *ModifyTerms) SetU(v float64) { e.u = &v }

// Extra returns the attribute bag shared with BaseTerms and CalculateU.
func (e *ModifyTerms) Extra() *Bag { return e.bag }

// Fields implements Event.
func (e *ModifyTerms) Fields() []Field {
	return []Field{
		{Name: "pid", Value: e.pid, Writable: false},
		{Name: "dt", Value: e.dt, Writable: false},
		{Name: "e", Value: e.e, Writable: false},
		{Name: "p", Value: derefOrNil(e.p), Writable: true},
		{Name: "i", Value: derefOrNil(e.i), Writable: true},
		{Name: "d", Value: derefOrNil(e.d), Writable: true},
		{Name: "u", Value: derefOrNil(e.u), Writable: true},
	}
}

func (e *ModifyTerms) setField(name string, value interface{}) error {
	v, _ := value.(float64)
	switch name {
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
// clone from any later SetX call on the original.
func (e *ModifyTerms) Clone() Event {
	cp := *e
	return &cp
}
