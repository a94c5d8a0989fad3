package commands

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"clamshell/internal/descriptor"
	"clamshell/pkg/clamtypes"
)

// runSpec executes a system command, streaming its output through the
// invocation's writers. The child's exit code becomes the invocation's.
func runSpec() descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name:    "run",
		Help:    "Run a system command and stream its output",
		Aliases: []string{"sh"},
		Args: []descriptor.ArgSpec{
			{Name: "cmd", Description: "Command line to execute", Type: descriptor.TypeString, Positional: true},
			{Name: "dir", Description: "Working directory for the command", Type: descriptor.TypeString, Default: ""},
		},
		Run: clamtypes.RunCancellable,
		Examples: []clamtypes.HelpExample{
			{Command: `run "uname -a"`, Description: "Run a command with arguments"},
			{Command: `sh cmd=ls dir=/tmp`, Description: "Run in a different directory"},
		},
		Handler: runHandler,
	}
}

func runHandler(ctx context.Context, inv *clamtypes.Invocation) (int, error) {
	words, err := shellquote.Split(inv.Args.String("cmd"))
	if err != nil {
		return 0, fmt.Errorf("failed to split command line: %w", err)
	}
	if len(words) == 0 {
		return 0, errors.New("command line is empty")
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = inv.Args.String("dir")
	cmd.Stdout = inv.Out
	cmd.Stderr = inv.ErrOut

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}
