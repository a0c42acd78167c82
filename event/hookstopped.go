package event

// HookStopped replaces an in-flight event for the modifiers after the
// one that raised pidctl.HookStop. Event carries the original event
// chain, which may itself be a HookStopped if a handler raised HookStop
// again while processing one: each recursion wraps the previous
// HookStopped, and the slice of remaining modifiers shrinks by at least
// one every time, so the chain always terminates.
type HookStopped struct {
	event     Event
	stopper   ModifierRef
	nth       int
	modifiers []ModifierRef
}

// NewHookStopped builds a HookStopped event.
func NewHookStopped(original Event, stopper ModifierRef, nth int, modifiers []ModifierRef) *HookStopped {
	return &HookStopped{event: original, stopper: stopper, nth: nth, modifiers: modifiers}
}

// Kind implements Event.
func (e *HookStopped) Kind() Kind { return KindHookStopped }

// Event returns the original event that was stopped. Read-only.
func (e *HookStopped) Event() Event { return e.event }

// Stopper returns the modifier that raised HookStop. Read-only.
func (e *HookStopped) Stopper() ModifierRef { return e.stopper }

// Nth returns the index of Stopper in Modifiers. Read-only.
func (e *HookStopped) Nth() int { return e.nth }

// Modifiers returns the full ordered modifier list for this dispatch.
// Read-only.
func (e *HookStopped) Modifiers() []ModifierRef { return e.modifiers }

// Fields implements Event.
func (e *HookStopped) Fields() []Field {
	return []Field{
		{Name: "event", Value: e.event, Writable: false},
		{Name: "stopper", Value: e.stopper, Writable: false},
		{Name: "nth", Value: e.nth, Writable: false},
		{Name: "modifiers", Value: e.modifiers, Writable: false},
	}
}

// Clone implements Event. The wrapped event is cloned too, so a recorded
// HookStopped stays independent of whatever the original event's
// modifiers do with it afterward.
func (e *HookStopped) Clone() Event {
	cp := *e
	if e.event != nil {
		cp.event = e.event.Clone()
	}
	return &cp
}
