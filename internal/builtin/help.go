package builtin

import (
	"context"
	"fmt"
	"strings"

	"clamshell/internal/descriptor"
	"clamshell/internal/help"
	"clamshell/internal/registry"
	"clamshell/pkg/clamtypes"
)

// helpSpec declares the help command. With no arguments it lists every
// visible command; given a command path it renders the full help surface.
func helpSpec(reg *registry.Registry, renderer *help.Renderer) descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name:    "help",
		Help:    "List commands, or describe one command in detail",
		Aliases: []string{"?"},
		Args: []descriptor.ArgSpec{
			{
				Name:        "command",
				Description: "Command path to describe",
				Type:        descriptor.TypeStringList,
				Positional:  true,
				Default:     []string{},
				Suggest: func(prefix string) []string {
					var out []string
					for _, name := range reg.VisibleNames() {
						if strings.HasPrefix(name, prefix) {
							out = append(out, name)
						}
					}
					return out
				},
			},
		},
		Handler: helpHandler(reg, renderer),
		Examples: []clamtypes.HelpExample{
			{Command: "help", Description: "List every registered command"},
			{Command: "help daemon start", Description: "Describe one subcommand in detail"},
		},
	}
}

func helpHandler(reg *registry.Registry, renderer *help.Renderer) clamtypes.Handler {
	return func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
		path := inv.Args.StringList("command")
		if len(path) == 0 {
			_, err := fmt.Fprint(inv.Out, renderer.CommandTable(reg))
			return 0, err
		}

		resolution, err := reg.Resolve(path)
		if err != nil {
			return 0, err
		}
		// A leaf consumed fewer tokens than the user gave, so the remainder
		// names a subcommand that does not exist.
		if len(resolution.Rest) > 0 {
			return 0, &registry.UnknownCommandError{
				Name:   resolution.Rest[0],
				Parent: strings.Join(resolution.Path, " "),
			}
		}

		rendered, err := renderer.CommandHelp(resolution.Command)
		if err != nil {
			return 0, err
		}
		_, err = fmt.Fprint(inv.Out, rendered)
		return 0, err
	}
}
