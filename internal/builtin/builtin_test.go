package builtin

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clamshell/internal/descriptor"
	"clamshell/internal/dispatch"
	"clamshell/internal/help"
	"clamshell/internal/logger"
	"clamshell/internal/output"
	"clamshell/internal/registry"
	"clamshell/internal/usagelog"
	"clamshell/pkg/clamtypes"
)

// testShell bundles the pieces a builtin exercises end to end: a registry
// with the builtins plus sample commands, a session, and a dispatcher whose
// output is captured.
type testShell struct {
	reg     *registry.Registry
	session *clamtypes.BaseContext
	out     *bytes.Buffer
	disp    *dispatch.Dispatcher
}

func newTestShell(t *testing.T, usage *usagelog.Recorder) *testShell {
	t.Helper()

	reg := registry.New()
	renderer := help.NewRenderer(output.LoadTheme("plain"))
	require.NoError(t, Register(reg, renderer, usage))
	for _, cmd := range sampleCommands(t) {
		require.NoError(t, reg.Register(cmd))
	}

	session := &clamtypes.BaseContext{}
	out := &bytes.Buffer{}
	return &testShell{
		reg:     reg,
		session: session,
		out:     out,
		disp:    dispatch.New(reg, session, usage, out, out),
	}
}

func sampleCommands(t *testing.T) []*descriptor.Command {
	t.Helper()

	nop := func(_ context.Context, _ *clamtypes.Invocation) (int, error) { return 0, nil }

	greet, err := descriptor.Build(descriptor.CommandSpec{
		Name: "greet",
		Help: "Print a greeting",
		Args: []descriptor.ArgSpec{
			{Name: "name", Description: "Who to greet", Type: descriptor.TypeString, Positional: true},
		},
		Handler: nop,
	})
	require.NoError(t, err)

	daemon, err := descriptor.BuildGroup(descriptor.GroupSpec{
		Name: "daemon",
		Help: "Manage worker daemons",
		Subcommands: []descriptor.CommandSpec{
			{
				Name: "start",
				Help: "Start a daemon",
				Args: []descriptor.ArgSpec{
					{Name: "name", Description: "Daemon name", Type: descriptor.TypeString, Positional: true},
					{Name: "workers", Description: "Worker count", Type: descriptor.TypeInt, Default: 1},
				},
				Handler: nop,
			},
			{Name: "stop", Help: "Stop a daemon", Handler: nop},
		},
	})
	require.NoError(t, err)

	return []*descriptor.Command{greet, daemon}
}

func TestRegisterBuiltins(t *testing.T) {
	reg := registry.New()
	renderer := help.NewRenderer(output.LoadTheme("plain"))
	require.NoError(t, Register(reg, renderer, nil))

	for _, name := range []string{"help", "?", "exit", "quit", "q", "verbose", "history"} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "expected %q to resolve", name)
	}

	// Every builtin name is now taken, so registering again must collide.
	err := Register(reg, renderer, nil)
	require.Error(t, err)
	var dup *registry.DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestHelpListsCommands(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "help")
	require.Equal(t, dispatch.StateCompleted, res.State)
	require.Equal(t, dispatch.CodeOK, res.Code)

	listing := sh.out.String()
	for _, name := range []string{"help", "exit", "verbose", "history", "greet", "daemon"} {
		assert.Contains(t, listing, name)
	}

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "?")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Equal(t, listing, sh.out.String())
}

func TestHelpDescribesCommand(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "help daemon start")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "daemon start")
	assert.Contains(t, sh.out.String(), "workers")

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "help verbose")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "level")
}

func TestHelpUnknownCommand(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "help bogus")
	require.Equal(t, dispatch.StateFailed, res.State)
	assert.Equal(t, dispatch.CodeUsage, res.Code)
	var unknown *registry.UnknownCommandError
	assert.ErrorAs(t, res.Err, &unknown)
}

func TestHelpRejectsExtraTokensAfterLeaf(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "help greet extra")
	require.Equal(t, dispatch.StateFailed, res.State)
	assert.Equal(t, dispatch.CodeUsage, res.Code)
	assert.Contains(t, res.Err.Error(), "extra")
}

func TestExitStopsSession(t *testing.T) {
	for _, name := range []string{"exit", "quit", "q"} {
		t.Run(name, func(t *testing.T) {
			sh := newTestShell(t, nil)
			res := sh.disp.DispatchLine(context.Background(), name)
			assert.Equal(t, dispatch.StateCompleted, res.State)
			assert.Equal(t, dispatch.CodeOK, res.Code)
			assert.True(t, res.Stop)
		})
	}
}

func TestVerboseShowsAndSetsLevel(t *testing.T) {
	t.Cleanup(func() { logger.SetVerbosity(0) })
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "verbose")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "Current verbosity: 0")

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "verbose 2")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Equal(t, 2, sh.session.Verbosity())
	assert.Contains(t, sh.out.String(), "Verbosity set to 2")

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "verbose")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "Current verbosity: 2")

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "verbose level=1")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Equal(t, 1, sh.session.Verbosity())
}

func TestVerboseRejectsInvalidLevel(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "verbose 5")
	require.Equal(t, dispatch.StateFailed, res.State)
	assert.Equal(t, dispatch.CodeValue, res.Code)

	res = sh.disp.DispatchLine(context.Background(), "verbose [1,2]")
	require.Equal(t, dispatch.StateFailed, res.State)
	assert.Equal(t, dispatch.CodeError, res.Code)
	assert.Contains(t, res.Err.Error(), "single level")
}

func TestHistoryWithoutJournal(t *testing.T) {
	sh := newTestShell(t, nil)

	res := sh.disp.DispatchLine(context.Background(), "history")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "not configured")
}

func TestHistoryShowsRecentInvocations(t *testing.T) {
	usage, err := usagelog.Open(filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = usage.Close() })

	sh := newTestShell(t, usage)

	res := sh.disp.DispatchLine(context.Background(), "greet world")
	require.Equal(t, dispatch.StateCompleted, res.State)
	res = sh.disp.DispatchLine(context.Background(), "daemon stop")
	require.Equal(t, dispatch.StateCompleted, res.State)

	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "history")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "greet world")
	assert.Contains(t, sh.out.String(), "daemon stop")

	// Limit 1 keeps only the newest entry, which by now is the previous
	// history invocation itself.
	sh.out.Reset()
	res = sh.disp.DispatchLine(context.Background(), "history 1")
	require.Equal(t, dispatch.StateCompleted, res.State)
	lines := strings.Split(strings.TrimRight(sh.out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "history")
}

func TestHistoryEmptyJournal(t *testing.T) {
	usage, err := usagelog.Open(filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = usage.Close() })

	sh := newTestShell(t, usage)

	res := sh.disp.DispatchLine(context.Background(), "history")
	require.Equal(t, dispatch.StateCompleted, res.State)
	assert.Contains(t, sh.out.String(), "No invocations recorded")
}
