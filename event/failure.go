package event

// Failure replaces an in-flight event for the modifiers after the one
// that raised an error other than pidctl.HookStop. Exc is re-raised to
// the original caller once every remaining modifier has seen this event;
// a second failure raised while handling a Failure only halts further
// fanout, it does not replace Exc.
type Failure struct {
	event     Event
	exc       error
	stopper   ModifierRef
	nth       int
	modifiers []ModifierRef
}

// NewFailure builds a Failure event.
func NewFailure(original Event, exc error, stopper ModifierRef, nth int, modifiers []ModifierRef) *Failure {
	return &Failure{event: original, exc: exc, stopper: stopper, nth: nth, modifiers: modifiers}
}

// Kind implements Event.
func (e *Failure) Kind() Kind { return KindFailure }

// Event returns the original event in flight when the failure occurred.
// Read-only.
func (e *Failure) Event() Event { return e.event }

// Exc returns the error the handler raised. Read-only.
func (e *Failure) Exc() error { return e.exc }

// Stopper returns the modifier whose handler raised Exc. Read-only.
func (e *Failure) Stopper() ModifierRef { return e.stopper }

// Nth returns the index of Stopper in Modifiers. Read-only.
func (e *Failure) Nth() int { return e.nth }

// Modifiers returns the full ordered modifier list for this dispatch.
// Read-only.
func (e *Failure) Modifiers() []ModifierRef { return e.modifiers }

// Fields implements Event.
func (e *Failure) Fields() []Field {
	return []Field{
		{Name: "event", Value: e.event, Writable: false},
		{Name: "exc", Value: e.exc, Writable: false},
		{Name: "stopper", Value: e.stopper, Writable: false},
		{Name: "nth", Value: e.nth, Writable: false},
		{Name: "modifiers", Value: e.modifiers, Writable: false},
	}
}

// Clone implements Event. The wrapped event is cloned too, so a recorded
// Failure stays independent of whatever the original event's modifiers
// do with it afterward.
func (e *Failure) Clone() Event {
	cp := *e
	if e.event != nil {
		cp.event = e.event.Clone()
	}
	return &cp
}
