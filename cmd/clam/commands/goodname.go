package commands

import (
	"context"
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// goodNameSpec carries a registration name chosen independently of any
// identifier, the descriptor model's answer to ugly internal names.
func goodNameSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name: "good-name",
		Help: "Print a friendly line",
		Args: []descriptor.ArgSpec{
			{
				Name:        "text",
				Description: "Text to print",
				Type:        descriptor.TypeString,
				Positional:  true,
				Default:     "Good Name!",
			},
		},
		Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
			_, err := fmt.Fprintln(inv.Out, inv.Args.String("text"))
			return 0, err
		},
	}
}
