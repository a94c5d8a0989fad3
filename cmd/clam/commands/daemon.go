package commands

import (
	"context"
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// daemonSpec groups start and stop under one prefix with a shared nice
// argument every subcommand can bind.
func daemonSpec() descriptor.GroupSpec {
	return descriptor.GroupSpec{
		Name: "daemon",
		Help: "Control the demo daemon fleet",
		Args: []descriptor.ArgSpec{
			{
				Name:        "nice",
				Description: "Scheduling niceness shared by every subcommand",
				Type:        descriptor.TypeInt,
				Default:     0,
			},
		},
		Subcommands: []descriptor.CommandSpec{
			{
				Name: "start",
				Help: "Start a daemon",
				Args: []descriptor.ArgSpec{
					{Name: "name", Description: "Daemon to start", Type: descriptor.TypeString, Positional: true},
					{Name: "workers", Description: "Worker processes to spawn", Type: descriptor.TypeInt, Default: 1},
				},
				Examples: []clamtypes.HelpExample{
					{Command: "daemon start resolver workers=4", Description: "Start with four workers"},
					{Command: "daemon start resolver nice=10", Description: "Start politely"},
				},
				Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
					fmt.Fprintf(inv.Out, "Starting %s with %d workers (nice %d)\n",
						inv.Args.String("name"), inv.Args.Int("workers"), inv.Args.Int("nice"))
					return 0, nil
				},
			},
			{
				Name: "stop",
				Help: "Stop a daemon",
				Args: []descriptor.ArgSpec{
					{Name: "name", Description: "Daemon to stop", Type: descriptor.TypeString, Positional: true},
					{Name: "force", Description: "Kill instead of draining", Type: descriptor.TypeBool, Default: false},
				},
				Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
					if inv.Args.Bool("force") {
						fmt.Fprintf(inv.Out, "Killing %s\n", inv.Args.String("name"))
						return 0, nil
					}
					fmt.Fprintf(inv.Out, "Stopping %s\n", inv.Args.String("name"))
					return 0, nil
				},
			},
		},
	}
}
