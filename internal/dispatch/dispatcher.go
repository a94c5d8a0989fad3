// Package dispatch drives invocations through a fixed lifecycle:
// Received → Resolved → Bound → Executing → Completed or Failed. Every stage
// failure carries a typed error that maps onto a stable exit code, so batch
// front-ends can return the failure class and the interactive front-end can
// print it and carry on.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"clamshell/internal/binder"
	"clamshell/internal/descriptor"
	"clamshell/internal/logger"
	"clamshell/internal/parser"
	"clamshell/internal/registry"
	"clamshell/internal/usagelog"
	"clamshell/pkg/clamtypes"
)

// Dispatcher executes one invocation at a time against a registry and a live
// session context. It owns no descriptor state and may be used for any number
// of invocations.
type Dispatcher struct {
	// Command descriptors to resolve against
	registry *registry.Registry
	// Session context handed to every handler, never mutated here
	session clamtypes.Context
	// Optional invocation journal; nil disables recording
	usage *usagelog.Recorder
	// Handler output writers
	out    io.Writer
	errOut io.Writer
	// Custom styled logger for dispatch operations
	logger *log.Logger
}

// New creates a dispatcher over reg. Handler output goes to out and errOut
// (stdout and stderr when nil); usage may be nil when no journal is
// configured.
func New(reg *registry.Registry, session clamtypes.Context, usage *usagelog.Recorder, out, errOut io.Writer) *Dispatcher {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Dispatcher{
		registry: reg,
		session:  session,
		usage:    usage,
		out:      out,
		errOut:   errOut,
		logger:   logger.NewStyledLogger("Dispatcher"),
	}
}

// DispatchLine lexes one input line and dispatches the resulting tokens.
func (d *Dispatcher) DispatchLine(ctx context.Context, line string) *Result {
	tokens, err := parser.Lex(line)
	return d.run(ctx, line, parser.Texts(tokens), err)
}

// Dispatch runs tokens already split by an outer shell. Bracket literals the
// shell broke apart are re-joined before resolution, so list arguments bind
// the same way they do interactively.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) *Result {
	merged := parser.MergeBrackets(tokens)
	return d.run(ctx, strings.Join(merged, " "), merged, nil)
}

// run drives one invocation through the lifecycle. A non-nil lexErr
// short-circuits to Failed before resolution.
func (d *Dispatcher) run(ctx context.Context, line string, tokens []string, lexErr error) *Result {
	started := time.Now()
	res := &Result{ID: uuid.NewString(), Line: line, State: StateReceived}
	defer func() {
		res.Duration = time.Since(started)
		d.record(res, started)
	}()

	d.logger.Debug("invocation received", "id", res.ID, "input", line)

	if lexErr != nil {
		return d.fail(res, lexErr)
	}
	if len(tokens) == 0 {
		res.State = StateCompleted
		return res
	}

	resolution, err := d.registry.Resolve(tokens)
	if err != nil {
		return d.fail(res, err)
	}
	cmd := resolution.Command
	res.Path = resolution.Path
	res.State = StateResolved
	d.logger.Debug("state transition", "id", res.ID, "state", StateResolved, "command", strings.Join(res.Path, " "))

	if cmd.IsGroup() {
		var subs []string
		for _, sub := range cmd.Subcommands {
			subs = append(subs, sub.Name)
		}
		return d.fail(res, &registry.UnknownCommandError{Parent: cmd.Name, Suggestions: subs})
	}

	args, err := binder.Bind(cmd, resolution.Rest)
	if err != nil {
		return d.fail(res, err)
	}
	res.State = StateBound
	d.logger.Debug("state transition", "id", res.ID, "state", StateBound)

	inv := &clamtypes.Invocation{
		ID:      res.ID,
		Path:    res.Path,
		Line:    line,
		Args:    args,
		Session: d.session,
		Out:     d.out,
		ErrOut:  d.errOut,
	}

	if listener, ok := d.session.(clamtypes.SessionListener); ok {
		listener.OnDispatch(res.Path)
	}

	res.State = StateExecuting
	d.logger.Debug("state transition", "id", res.ID, "state", StateExecuting)

	code, err := d.runHandler(ctx, cmd, inv)
	switch {
	case err == nil:
		res.State = StateCompleted
		res.Code = code
	case errors.Is(err, ErrStop):
		res.State = StateCompleted
		res.Code = CodeOK
		res.Stop = true
	default:
		var handlerErr *HandlerError
		if !errors.As(err, &handlerErr) {
			err = &HandlerError{Command: strings.Join(res.Path, " "), Err: err}
		}
		return d.fail(res, err)
	}

	d.logger.Debug("state transition", "id", res.ID, "state", res.State, "code", res.Code)
	return res
}

// runHandler executes the handler under a cancellable context. While the
// handler is in flight an os.Interrupt folds into the same cancellation, so
// Ctrl-C cancels the invocation rather than the process. RunSynchronous
// handlers run inline; RunCancellable handlers run on a worker goroutine
// while the dispatcher waits on completion or cancellation.
func (d *Dispatcher) runHandler(ctx context.Context, cmd *descriptor.Command, inv *clamtypes.Invocation) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		select {
		case <-sigc:
			d.logger.Debug("interrupt received", "id", inv.ID)
			cancel()
		case <-ctx.Done():
		}
	}()

	if cmd.Run == clamtypes.RunSynchronous {
		return d.invoke(ctx, cmd, inv)
	}

	type outcome struct {
		code int
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		code, err := d.invoke(ctx, cmd, inv)
		done <- outcome{code: code, err: err}
	}()

	select {
	case out := <-done:
		return out.code, out.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// invoke calls the handler and converts a panic into a *HandlerError so one
// misbehaving command cannot tear the session down.
func (d *Dispatcher) invoke(ctx context.Context, cmd *descriptor.Command, inv *clamtypes.Invocation) (code int, err error) {
	defer func() {
		if v := recover(); v != nil {
			code = 0
			err = &HandlerError{
				Command: strings.Join(inv.Path, " "),
				Err:     fmt.Errorf("%v", v),
				Panic:   true,
			}
		}
	}()
	return cmd.Handler(ctx, inv)
}

// fail stamps the terminal failure on the result.
func (d *Dispatcher) fail(res *Result, err error) *Result {
	res.State = StateFailed
	res.Err = err
	res.Code = codeFor(err)
	d.logger.Debug("invocation failed", "id", res.ID, "state", StateFailed, "code", res.Code, "error", err)
	return res
}

// record appends the terminal state to the usage journal when configured.
func (d *Dispatcher) record(res *Result, started time.Time) {
	entry := usagelog.Entry{
		ID:        res.ID,
		StartedAt: started,
		Line:      res.Line,
		Path:      strings.Join(res.Path, " "),
		State:     res.State.String(),
		Code:      res.Code,
		Duration:  res.Duration,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if err := d.usage.Record(entry); err != nil {
		d.logger.Warn("usage log write failed", "id", res.ID, "error", err)
	}
}

// codeFor maps a terminal error onto its exit code class.
func codeFor(err error) int {
	var (
		parseErr   *parser.ParseError
		unknownCmd *registry.UnknownCommandError
		unknownArg *binder.UnknownArgumentError
		ambiguous  *binder.AmbiguousArgumentError
		extra      *binder.ExtraArgumentsError
		missing    *binder.MissingArgumentError
		coercion   *binder.CoercionError
		choice     *binder.ChoiceError
	)
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, context.Canceled):
		return CodeInterrupt
	case errors.As(err, &parseErr):
		return CodeError
	case errors.As(err, &unknownCmd), errors.As(err, &unknownArg),
		errors.As(err, &ambiguous), errors.As(err, &extra):
		return CodeUsage
	case errors.As(err, &missing):
		return CodeMissing
	case errors.As(err, &coercion), errors.As(err, &choice):
		return CodeValue
	default:
		return CodeError
	}
}
