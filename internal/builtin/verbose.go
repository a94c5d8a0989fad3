package builtin

import (
	"context"
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/internal/logger"
	"clamshell/pkg/clamtypes"
)

// verboseSpec declares the verbose command. The level is a list argument
// defaulting to empty so a bare `verbose` is distinguishable from an explicit
// `verbose 0`: the empty default reports the current level, one element sets
// it.
func verboseSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name: "verbose",
		Help: "Show or set the session verbosity",
		Args: []descriptor.ArgSpec{
			{
				Name:        "level",
				Description: "Verbosity level to set",
				Type:        descriptor.TypeIntList,
				Positional:  true,
				Default:     []int{},
				Choices:     []string{"0", "1", "2"},
			},
		},
		Handler: verboseHandler,
		Examples: []clamtypes.HelpExample{
			{Command: "verbose", Description: "Show the current verbosity level"},
			{Command: "verbose 2", Description: "Enable debug logging with caller reporting"},
		},
	}
}

func verboseHandler(_ context.Context, inv *clamtypes.Invocation) (int, error) {
	levels := inv.Args.IntList("level")
	switch len(levels) {
	case 0:
		_, err := fmt.Fprintf(inv.Out, "Current verbosity: %d\n", inv.Session.Verbosity())
		return 0, err
	case 1:
		level := levels[0]
		inv.Session.SetVerbosity(level)
		logger.SetVerbosity(level)
		_, err := fmt.Fprintf(inv.Out, "Verbosity set to %d\n", level)
		return 0, err
	default:
		return 0, fmt.Errorf("verbose takes a single level, got %d", len(levels))
	}
}
