// Package dispatcher implements the ordered, stop/failure-aware event
// propagation that is the heart of the PIDPlus modifier pipeline: given
// an event and a controller's ordered modifier list, it invokes each
// modifier in turn, synthesizes a HookStopped or Failure replacement
// event for the remaining modifiers when one raises pidctl.HookStop or
// any other error, and re-raises a genuine failure to the caller only
// after every remaining modifier has been notified.
package dispatcher

import (
	"errors"

	"pidplus/event"
	"pidplus/modifier"
	"pidplus/pidctl"
)

// Nester tracks per-controller event-nesting depth, so observers such as
// EventPrint can indent an event emitted from within another modifier's
// Handle call. HookStopped/Failure replacement events are not nested:
// they replace the current event rather than descending from it.
type Nester interface {
	Enter() int
	Exit()
}

// Dispatch delivers ev to each of mods in order and returns the first
// genuine failure, if any, after every remaining modifier has observed
// the resulting Failure event. n may be nil, in which case nesting is
// not tracked.
func Dispatch(ev event.Event, mods []modifier.Modifier, n Nester) error {
	if n != nil {
		n.Enter()
		defer n.Exit()
	}
	return dispatchFrom(ev, mods, 0)
}

func dispatchFrom(ev event.Event, mods []modifier.Modifier, start int) error {
	for i := start; i < len(mods); i++ {
		err := mods[i].Handle(ev)
		if err == nil {
			continue
		}
		if errors.Is(err, pidctl.HookStop) {
			refs := Refs(mods)
			stopped := event.NewHookStopped(ev, mods[i], i, refs)
			return dispatchFrom(stopped, mods, i+1)
		}
		if _, inFanout := ev.(*event.Failure); inFanout {
			// A failure while notifying others of a Failure halts the
			// fanout; the caller still reports the original error.
			return err
		}
		refs := Refs(mods)
		failure := event.NewFailure(ev, err, mods[i], i, refs)
		_ = dispatchFrom(failure, mods, i+1)
		return err
	}
	return nil
}

// ContinueFrom delivers ev to mods[start:], applying the same stop/
// failure fanout rules as Dispatch. pidplus.New uses it to fan a
// construction-time Attached stop or failure out to the modifiers not
// yet attached, without re-delivering anything to the modifiers before
// start.
func ContinueFrom(ev event.Event, mods []modifier.Modifier, start int) error {
	return dispatchFrom(ev, mods, start)
}

// Refs adapts an ordered modifier list to the identity-only view that
// HookStopped and Failure events carry.
func Refs(mods []modifier.Modifier) []event.ModifierRef {
	refs := make([]event.ModifierRef, len(mods))
	for i, m := range mods {
		refs[i] = m
	}
	return refs
}
