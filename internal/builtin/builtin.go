// Package builtin provides the commands every clamshell session starts with:
// help, exit, verbose and history. They are plain descriptor specs registered
// ahead of the application's own commands, so an application can never shadow
// them accidentally.
package builtin

import (
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/internal/help"
	"clamshell/internal/registry"
	"clamshell/internal/usagelog"
)

// Register builds the builtin command set and adds it to reg. The renderer
// draws the help surfaces; usage may be nil when no invocation journal is
// configured.
func Register(reg *registry.Registry, renderer *help.Renderer, usage *usagelog.Recorder) error {
	specs := []descriptor.CommandSpec{
		helpSpec(reg, renderer),
		exitSpec(),
		verboseSpec(),
		historySpec(usage),
	}
	for _, spec := range specs {
		cmd, err := descriptor.Build(spec)
		if err != nil {
			return fmt.Errorf("failed to build builtin %q: %w", spec.Name, err)
		}
		if err := reg.Register(cmd); err != nil {
			return fmt.Errorf("failed to register builtin %q: %w", spec.Name, err)
		}
	}
	return nil
}
