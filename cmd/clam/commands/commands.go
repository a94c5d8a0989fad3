// Package commands is the demo command set bundled with the clam binary.
// Each command exercises a different slice of the argument model: positional
// and named arguments, scalar-to-list lifting, choice sets, shared group
// arguments and cancellable handlers.
package commands

import "clamshell/internal/descriptor"

// All builds the demo command set in registration order.
func All() ([]*descriptor.Command, error) {
	specs := []descriptor.CommandSpec{
		lookupHostsSpec(),
		goodNameSpec(),
		tripleSpec(),
		pickSpec(),
		runSpec(),
	}
	cmds := make([]*descriptor.Command, 0, len(specs)+1)
	for _, spec := range specs {
		cmd, err := descriptor.Build(spec)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	daemon, err := descriptor.BuildGroup(daemonSpec())
	if err != nil {
		return nil, err
	}
	return append(cmds, daemon), nil
}
