package commands

import (
	"context"
	"fmt"
	"time"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// tripleDelay paces the output so an interrupt has something to cancel.
var tripleDelay = 500 * time.Millisecond

// tripleSpec is the cancellable-handler demonstration: slow output that a
// Ctrl-C stops mid-run.
func tripleSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name: "triple",
		Help: "Calculate the triple of the input value, slowly",
		Args: []descriptor.ArgSpec{
			{Name: "number", Description: "Value to triple", Type: descriptor.TypeInt, Positional: true},
		},
		Run: clamtypes.RunCancellable,
		Examples: []clamtypes.HelpExample{
			{Command: "triple 7", Description: "Print 21 three times"},
		},
		Handler: func(ctx context.Context, inv *clamtypes.Invocation) (int, error) {
			number := inv.Args.Int("number")
			fmt.Fprintf(inv.Out, "Input is %d\n", number)
			for i := 0; i < 3; i++ {
				select {
				case <-ctx.Done():
					return 0, ctx.Err()
				case <-time.After(tripleDelay):
				}
				fmt.Fprintf(inv.Out, "%d * 3 = %d\n", number, number*3)
			}
			return 0, nil
		},
	}
}
