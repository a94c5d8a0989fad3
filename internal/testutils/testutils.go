// Package testutils provides shared fixtures for clamshell tests:
// descriptor builders that fail the test on a bad spec, a ready-wired
// dispatcher, and sessions and writers that stay safe to inspect while
// handler goroutines are still running.
package testutils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"clamshell/internal/descriptor"
	"clamshell/internal/dispatch"
	"clamshell/internal/registry"
	"clamshell/pkg/clamtypes"
)

// MustBuildCommand builds a leaf command from spec, failing the test on error.
func MustBuildCommand(t *testing.T, spec descriptor.CommandSpec) *descriptor.Command {
	t.Helper()
	cmd, err := descriptor.Build(spec)
	require.NoError(t, err)
	return cmd
}

// MustBuildGroup builds a command group from spec, failing the test on error.
func MustBuildGroup(t *testing.T, spec descriptor.GroupSpec) *descriptor.Command {
	t.Helper()
	group, err := descriptor.BuildGroup(spec)
	require.NoError(t, err)
	return group
}

// NewDispatcher registers the given commands into a fresh registry and
// returns a dispatcher over them, with all output captured in the
// returned buffer.
func NewDispatcher(t *testing.T, cmds ...*descriptor.Command) (*dispatch.Dispatcher, *SyncBuffer) {
	t.Helper()
	reg := registry.New()
	for _, cmd := range cmds {
		require.NoError(t, reg.Register(cmd))
	}
	out := &SyncBuffer{}
	return dispatch.New(reg, &clamtypes.BaseContext{}, nil, out, out), out
}

// NewInvocation assembles an invocation for driving a handler directly,
// bypassing parsing and binding. Args values must already have the types
// the handler expects. Output is captured in the returned buffer.
func NewInvocation(path []string, args clamtypes.Args) (*clamtypes.Invocation, *SyncBuffer) {
	out := &SyncBuffer{}
	return &clamtypes.Invocation{
		ID:      uuid.New().String(),
		Path:    append([]string(nil), path...),
		Line:    strings.Join(path, " "),
		Args:    args,
		Session: &clamtypes.BaseContext{},
		Out:     out,
		ErrOut:  out,
	}, out
}
