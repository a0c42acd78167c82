// Package event defines the typed events that flow through a PIDPlus
// control loop: construction (Attached, InitialConditions), setpoint
// changes (SetpointChange), the three stages of a single pid() tick
// (BaseTerms, ModifyTerms, CalculateU), and the two replacement events a
// dispatcher synthesizes when a modifier stops or fails propagation
// (HookStopped, Failure).
//
// Each event exposes its read-write fields through plain Go setters and
// its read-only fields through getters only; Go's compiler is the
// enforcement mechanism for the read-only/read-write contract described
// in the surrounding design. Fields also have a matching Fields() entry,
// used for introspection by EventPrint and PIDHistory and to police
// writes made through the generic SetField path, which exists for
// tooling that addresses fields by name rather than by Go method.
package event

import (
	"fmt"

	"pidplus/pidctl"
)

// Kind identifies an event's stage in the control loop.
type Kind int

const (
	KindAttached Kind = iota
	KindInitialConditions
	KindSetpointChange
	KindBaseTerms
	KindModifyTerms
	KindCalculateU
	KindHookStopped
	KindFailure
)

// String renders a Kind the way it appears in textual event output.
func (k Kind) String() string {
	switch k {
	case KindAttached:
		return "Attached"
	case KindInitialConditions:
		return "InitialConditions"
	case KindSetpointChange:
		return "SetpointChange"
	case KindBaseTerms:
		return "BaseTerms"
	case KindModifyTerms:
		return "ModifyTerms"
	case KindCalculateU:
		return "CalculateU"
	case KindHookStopped:
		return "HookStopped"
	case KindFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Controller is the capability surface an event's pid back-reference
// exposes to modifiers: the three pieces of controller state a modifier
// is allowed to treat as non-opaque (spec section on the shared-resource
// policy). pidplus.Controller implements it.
type Controller interface {
	Integration() float64
	SetIntegration(float64)
	Setpoint() float64
	PV() float64
}

// ModifierRef is the minimal identity surface of a modifier: enough to
// name it in a HookStopped or Failure diagnostic event without this
// package importing the modifier package (which imports this one).
type ModifierRef interface {
	fmt.Stringer
}

// Field describes one attribute of an event for textual rendering
// (EventPrint), generic snapshotting (PIDHistory's detail mode), and
// read-only enforcement via SetField.
type Field struct {
	Name     string
	Value    interface{}
	Writable bool
}

// Event is implemented by every event kind the dispatcher propagates.
type Event interface {
	Kind() Kind
	// Fields returns the event's attributes in declaration order.
	Fields() []Field
	// Clone returns a copy of the event whose writable fields are
	// independent of the original: a later SetX call on the live event
	// (made by a modifier further down the same dispatch) cannot reach
	// back and change a clone recorded earlier in that dispatch, e.g. by
	// PIDHistory.
	Clone() Event
}

// fieldSetter is implemented by event kinds that have at least one
// writable field; SetField uses it to perform the actual mutation once
// it has confirmed the field is writable.
type fieldSetter interface {
	setField(name string, value interface{}) error
}

// SetField writes a writable field on ev by name. It is the one place in
// the package where a read-only write is rejected at runtime instead of
// simply being unavailable at compile time: EventPrint and PIDHistory
// address fields generically, and a config-driven modifier chain may
// want to replay a recorded mutation by field name.
func SetField(ev Event, name string, value interface{}) error {
	for _, f := range ev.Fields() {
		if f.Name != name {
			continue
		}
		if !f.Writable {
			return pidctl.Errorf("%s.%s is read-only", ev.Kind(), name)
		}
		setter, ok := ev.(fieldSetter)
		if !ok {
			return pidctl.Errorf("%s.%s has no setter", ev.Kind(), name)
		}
		return setter.setField(name, value)
	}
	return pidctl.Errorf("%s has no field %q", ev.Kind(), name)
}

// Bag is the open attribute bag shared by BaseTerms, ModifyTerms and
// CalculateU within a single pid() tick: a value a modifier attaches in
// BaseTerms is still visible on CalculateU.
type Bag struct {
	values map[string]interface{}
}

// NewBag returns an empty attribute bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string]interface{})}
}

// Set attaches or overwrites a custom attribute.
func (b *Bag) Set(key string, value interface{}) {
	b.values[key] = value
}

// Get retrieves a custom attribute.
func (b *Bag) Get(key string) (interface{}, bool) {
	v, ok := b.values[key]
	return v, ok
}
