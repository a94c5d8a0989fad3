// Package clamtypes defines the public types shared between the clamshell
// runtime and the command handlers an application registers with it. Handlers
// depend only on this package, never on the runtime internals.
package clamtypes

import (
	"context"
	"io"
	"sync"
)

// RunMode selects how the dispatcher drives a command handler.
type RunMode int

const (
	// RunSynchronous executes the handler inline on the dispatching goroutine.
	RunSynchronous RunMode = iota
	// RunCancellable executes the handler on a worker goroutine so the
	// dispatcher can observe interrupts and cancel the invocation while it
	// is in flight. Handlers must watch ctx.Done to stop promptly.
	RunCancellable
)

// Handler is the function a command descriptor binds user input to.
// The returned int is the invocation's status code (0 for success); a
// non-nil error marks the invocation as failed regardless of the code.
type Handler func(ctx context.Context, inv *Invocation) (int, error)

// Invocation carries everything a handler needs for a single dispatch:
// the bound arguments, the resolved command path, the shared session
// context, and the writers command output should go to.
type Invocation struct {
	// ID uniquely identifies this dispatch for logging and usage records.
	ID string
	// Path is the resolved command path, root command first.
	Path []string
	// Line is the raw input the invocation was parsed from, when known.
	Line string
	// Args holds the bound argument values keyed by canonical name.
	Args Args
	// Session is the application's shared state object.
	Session Context
	// Out and ErrOut are the invocation's output streams. Handlers should
	// write through these rather than os.Stdout so transcripts and tests
	// can capture output.
	Out    io.Writer
	ErrOut io.Writer
}

// Context is the session state threaded through every invocation. The
// runtime never mutates it beyond what handlers themselves do; applications
// typically embed BaseContext and add their own fields.
type Context interface {
	// Verbosity reports the session's current verbosity level.
	Verbosity() int
	// SetVerbosity updates the session's verbosity level.
	SetVerbosity(level int)
}

// SessionListener is implemented by contexts that want lifecycle callbacks
// from the shell runtime.
type SessionListener interface {
	// OnInteractive runs once before the interactive loop starts reading.
	OnInteractive()
	// OnDispatch runs before each resolved command executes.
	OnDispatch(path []string)
}

// BaseContext is a ready-to-embed Context implementation guarding its
// state with a mutex so handlers may run on worker goroutines.
type BaseContext struct {
	mu        sync.RWMutex
	verbosity int
}

// Verbosity returns the current verbosity level.
func (c *BaseContext) Verbosity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verbosity
}

// SetVerbosity sets the verbosity level.
func (c *BaseContext) SetVerbosity(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verbosity = level
}
