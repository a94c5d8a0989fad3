package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell/v2"

	"clamshell/internal/dispatch"
	"clamshell/internal/registry"
	"clamshell/pkg/clamtypes"
)

// RunInteractive starts the read-dispatch loop and blocks until the session
// ends. Failures are printed and the loop continues, so the exit code is 0:
// the exit builtin, a second Ctrl-C and EOF all end the session cleanly.
func (a *App) RunInteractive() int {
	sh := ishell.New()
	sh.SetPrompt(a.cfg.Prompt)
	if path := a.historyPath(); path != "" {
		sh.SetHistoryPath(path)
	}

	// Drop ishell's own commands so every line reaches the dispatcher
	// through the NotFound hook.
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")
	sh.DeleteCmd("clear")
	sh.NotFound(a.processInput)
	sh.CustomCompleter(a.Completer())

	// Ctrl-C at the prompt abandons the pending line; a second one in a row
	// ends the session. Ctrl-C while a handler runs never reaches here, the
	// dispatcher folds it into the invocation's cancellation.
	sh.Interrupt(func(c *ishell.Context, count int, _ string) {
		if count >= 2 {
			c.Println("interrupted")
			c.Stop()
			return
		}
		c.Println("press Ctrl-C again to exit")
	})
	sh.EOF(func(c *ishell.Context) {
		c.Stop()
	})

	if listener, ok := a.session.(clamtypes.SessionListener); ok {
		listener.OnInteractive()
	}

	a.printer.Println(fmt.Sprintf("%s %s", a.name, a.version))
	a.printer.Println("Type 'help' for available commands, 'exit' to leave.")
	a.logger.Debug("interactive session started", "prompt", a.cfg.Prompt)

	sh.Run()
	a.logger.Debug("interactive session ended")
	return 0
}

// processInput handles one interactive line. ishell hands the line split on
// whitespace; rejoining restores it with runs of spaces collapsed.
func (a *App) processInput(c *ishell.Context) {
	line := strings.TrimSpace(strings.Join(c.RawArgs, " "))
	if skippable(line) {
		return
	}
	res := a.dispatchInteractive(line)
	if res.Stop {
		c.Stop()
	}
}

// dispatchInteractive runs one line, printing failures instead of returning
// them so the loop survives every error class. With auto-correct enabled, a
// mistyped root command with exactly one near miss is retried corrected.
func (a *App) dispatchInteractive(line string) *dispatch.Result {
	res := a.dispatcher.DispatchLine(context.Background(), line)
	if res.Err == nil {
		return res
	}

	var unknown *registry.UnknownCommandError
	if a.cfg.AutoCorrect && errors.As(res.Err, &unknown) &&
		unknown.Parent == "" && unknown.Name != "" && len(unknown.Suggestions) == 1 {
		corrected := strings.Replace(line, unknown.Name, unknown.Suggestions[0], 1)
		a.printer.Info(fmt.Sprintf("correcting %q to %q", unknown.Name, unknown.Suggestions[0]))
		res = a.dispatcher.DispatchLine(context.Background(), corrected)
		if res.Err == nil {
			return res
		}
	}

	a.printFailure(res)
	return res
}
