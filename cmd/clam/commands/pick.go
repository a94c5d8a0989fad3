package commands

import (
	"context"
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// pickSpec constrains every argument with a choice set: a required named
// string, an optional string list checked element-wise, and an optional int.
func pickSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name: "pick",
		Help: "A style picking tool",
		Args: []descriptor.ArgSpec{
			{
				Name:        "style",
				Description: "Pick a style",
				Type:        descriptor.TypeString,
				Choices:     []string{"test", "toast", "toad"},
			},
			{
				Name:        "stuff",
				Description: "More colors",
				Type:        descriptor.TypeStringList,
				Default:     []string{},
				Choices:     []string{"red", "green", "blue"},
			},
			{
				Name:        "code",
				Description: "Color code",
				Type:        descriptor.TypeInt,
				Default:     13,
				Choices:     []string{"12", "13", "14"},
			},
		},
		Examples: []clamtypes.HelpExample{
			{Command: "pick style=toast", Description: "Pick with the defaults"},
			{Command: "pick style=test stuff=[red,blue] code=14", Description: "Pick everything"},
		},
		Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
			fmt.Fprintf(inv.Out, "Style is '%s' code is %d\n", inv.Args.String("style"), inv.Args.Int("code"))
			if stuff := inv.Args.StringList("stuff"); len(stuff) > 0 {
				fmt.Fprintf(inv.Out, "Stuff is %v\n", stuff)
			}
			return 0, nil
		},
	}
}
