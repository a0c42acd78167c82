// Package modifier defines the capability every PIDPlus modifier
// implements and a handful of small embeddable helpers shared by the
// built-in modifiers in this package.
package modifier

import (
	"pidplus/event"
	"pidplus/pidctl"
)

// Modifier is the single capability a PIDPlus modifier must provide:
// Handle receives every event dispatched to the controller it is
// attached to (Attached, InitialConditions, SetpointChange, BaseTerms,
// ModifyTerms, CalculateU, and the HookStopped/Failure replacements),
// and String names it for diagnostics (HookStopped.Stopper,
// Failure.Stopper, EventPrint's rendering).
//
// A Handle implementation that only cares about some event kinds type-
// switches on ev and returns nil for anything else — the equivalent of
// the framework's implicit on_default no-op. A Handle implementation
// that wants every event regardless of kind (PIDHistory, EventPrint)
// simply acts on ev without switching — the equivalent of on_default
// catching everything.
//
// Handle returns pidctl.HookStop to halt propagation of ev to the
// remaining modifiers, or any other non-nil error to report a failure
// that the dispatcher wraps into a Failure event and ultimately
// re-raises to the caller.
type Modifier interface {
	Handle(ev event.Event) error
	String() string
}

// Once is an embeddable helper for modifiers that may be attached to at
// most one controller: call Check from within the Attached case of
// Handle. A modifier with no per-controller state does not need this
// and may be shared freely across controllers.
type Once struct {
	attached event.Controller
}

// Check records ctrl as the modifier's controller the first time it is
// called, and fails any subsequent call with a different controller.
func (o *Once) Check(ctrl event.Controller) error {
	if o.attached == nil {
		o.attached = ctrl
		return nil
	}
	if o.attached != ctrl {
		return pidctl.NewUsageError("modifier already attached to another controller")
	}
	return nil
}
