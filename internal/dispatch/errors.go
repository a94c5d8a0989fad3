package dispatch

import (
	"errors"
	"fmt"
)

// ErrStop is returned by a handler to end an interactive session cleanly.
// The dispatcher maps it to a Completed result with Stop set.
var ErrStop = errors.New("session stop requested")

// HandlerError wraps a failure inside a command handler: a returned error, a
// recovered panic, or a cancellation observed mid-flight.
type HandlerError struct {
	Command string // space-joined command path
	Err     error  // underlying failure
	Panic   bool   // set when recovered from a panic
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	if e.Panic {
		return fmt.Sprintf("command %q panicked: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying handler failure.
func (e *HandlerError) Unwrap() error { return e.Err }
