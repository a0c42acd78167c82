// Package pidctl holds the error kinds shared by the pid, pidplus, event,
// modifier and dispatcher packages, so none of them need to import each
// other just to compare error values.
package pidctl

import "fmt"

// UsageError reports a programmer error: a missing dt with no configured
// default, a non-positive duration where one isn't allowed, reattaching a
// single-attach modifier, or writing a read-only event field. Usage errors
// are never wrapped away; callers are expected to fix the call site, not
// recover from them.
type UsageError struct {
	msg string
}

// NewUsageError builds a UsageError with the given message.
func NewUsageError(msg string) *UsageError {
	return &UsageError{msg: msg}
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.msg
}

// Errorf builds a UsageError from a format string, mirroring fmt.Errorf.
func Errorf(format string, args ...interface{}) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// stopError is the concrete type behind HookStop.
type stopError struct{}

func (stopError) Error() string { return "pidctl: hook stop" }

// HookStop is returned by a modifier's Handle method to halt propagation
// of the current event to the remaining modifiers. It is not a failure:
// the dispatcher recognizes it via errors.Is and never lets it reach a
// pid()/setpoint/construction caller. Remaining modifiers are instead
// notified via a HookStopped event.
var HookStop error = stopError{}
