package feedback

import "errors"

// ErrSlicessMustBeSameLength is returned when a full-state operation is
// given a setpoint and measurement (or error and gain) vector of
// differing length.
var ErrSlicessMustBeSameLength = errors.New("feedback: slices must be the same length")
