package dispatch

import "time"

// State represents the lifecycle position of a single invocation.
type State int

const (
	// StateReceived - input accepted and an invocation id assigned
	StateReceived State = iota
	// StateResolved - leading tokens resolved to a command descriptor
	StateResolved
	// StateBound - argument tokens bound to typed values
	StateBound
	// StateExecuting - handler running under the dispatch context
	StateExecuting
	// StateCompleted - invocation finished without error
	StateCompleted
	// StateFailed - invocation failed at some stage
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateReceived:
		return "Received"
	case StateResolved:
		return "Resolved"
	case StateBound:
		return "Bound"
	case StateExecuting:
		return "Executing"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Exit codes reported on Result.Code, grouped by failure class. Batch
// front-ends return them from the process; the interactive front-end prints
// the failure and continues.
const (
	// CodeOK - success
	CodeOK = 0
	// CodeError - handler errors and panics, lex failures
	CodeError = 1
	// CodeUsage - unknown command or argument, duplicates, surplus positionals
	CodeUsage = 2
	// CodeMissing - required arguments absent
	CodeMissing = 3
	// CodeValue - type coercion and choice failures
	CodeValue = 4
	// CodeInterrupt - invocation cancelled by an interrupt
	CodeInterrupt = 130
)

// Result describes one finished invocation.
type Result struct {
	ID       string        // invocation id
	Line     string        // input as dispatched
	Path     []string      // resolved command path; nil when resolution failed
	State    State         // terminal state, Completed or Failed
	Code     int           // process exit code for batch front-ends
	Err      error         // terminal error, nil on success
	Stop     bool          // a handler requested the session to end
	Duration time.Duration // wall time from receipt to terminal state
}
