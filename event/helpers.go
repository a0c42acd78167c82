package event

import "pidplus/pidctl"

// fieldNotFound is the error returned by a setField implementation when
// asked to write a name that isn't one of its writable fields; SetField
// already validates the name exists and is writable, so this only fires
// if a setField implementation and its Fields() table disagree.
func fieldNotFound(e Event, name string) error {
	return pidctl.Errorf("%s has no writable field %q", e.Kind(), name)
}
