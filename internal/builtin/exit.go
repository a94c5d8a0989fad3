package builtin

import (
	"context"

	"clamshell/internal/descriptor"
	"clamshell/internal/dispatch"
	"clamshell/pkg/clamtypes"
)

// exitSpec declares the exit command. It ends the session through the
// dispatcher's stop sentinel rather than exiting the process, so batch
// front-ends and tests observe a normal Completed result.
func exitSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name:    "exit",
		Help:    "End the session",
		Aliases: []string{"quit", "q"},
		Handler: func(_ context.Context, _ *clamtypes.Invocation) (int, error) {
			return 0, dispatch.ErrStop
		},
	}
}
