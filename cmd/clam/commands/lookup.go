package commands

import (
	"context"
	"fmt"
	"net"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// lookupHostsSpec resolves hostnames and prints their addresses.
func lookupHostsSpec() descriptor.CommandSpec {
	return lookupHostsSpecWith(net.LookupHost)
}

// lookupHostsSpecWith takes the resolver as a parameter so tests run
// without touching DNS.
func lookupHostsSpecWith(resolve func(host string) ([]string, error)) descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name:    "lookup-hosts",
		Help:    "Look up hostnames and print the corresponding addresses",
		Aliases: []string{"lookup"},
		Args: []descriptor.ArgSpec{
			{
				Name:        "hosts",
				Description: "Hostnames to resolve",
				Type:        descriptor.TypeStringList,
				Aliases:     []string{"i"},
				Positional:  true,
			},
			{
				Name:        "nice",
				Description: "Resolver niceness, accepted and ignored",
				Type:        descriptor.TypeInt,
				Default:     0,
			},
		},
		Examples: []clamtypes.HelpExample{
			{Command: "lookup-hosts localhost", Description: "Resolve a single host"},
			{Command: "lookup i=[localhost,example.com]", Description: "Resolve several hosts through the alias"},
		},
		Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
			hosts := inv.Args.StringList("hosts")
			fmt.Fprintf(inv.Out, "Input: %v\n", hosts)
			fmt.Fprintf(inv.Out, "Verbose? %d\n", inv.Session.Verbosity())
			for _, host := range hosts {
				addrs, err := resolve(host)
				if err != nil {
					return 1, fmt.Errorf("failed to resolve %q: %w", host, err)
				}
				fmt.Fprintf(inv.Out, "%s is %s\n", host, addrs[0])
			}
			return 0, nil
		},
	}
}
