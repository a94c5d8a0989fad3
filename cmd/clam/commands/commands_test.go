package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clamshell/internal/dispatch"
	"clamshell/internal/testutils"
)

func TestAllBuilds(t *testing.T) {
	cmds, err := All()
	require.NoError(t, err)
	require.Len(t, cmds, 6)

	var names []string
	for _, cmd := range cmds {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"lookup-hosts", "good-name", "triple", "pick", "run", "daemon"}, names)
}

func TestLookupHosts(t *testing.T) {
	addrs := map[string][]string{
		"localhost":    {"127.0.0.1"},
		"clam.example": {"192.0.2.10"},
	}
	spec := lookupHostsSpecWith(func(host string) ([]string, error) {
		if found, ok := addrs[host]; ok {
			return found, nil
		}
		return nil, fmt.Errorf("no such host %s", host)
	})
	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, spec))

	res := d.DispatchLine(context.Background(), "lookup i=[localhost,clam.example]")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Input: [localhost clam.example]")
	assert.Contains(t, out.String(), "localhost is 127.0.0.1")
	assert.Contains(t, out.String(), "clam.example is 192.0.2.10")

	// A lone hostname lifts into a one-element list.
	out.Reset()
	res = d.DispatchLine(context.Background(), "lookup-hosts localhost")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "localhost is 127.0.0.1")

	// Several bare hostnames flow into the trailing list argument.
	out.Reset()
	res = d.DispatchLine(context.Background(), "lookup-hosts localhost clam.example")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Input: [localhost clam.example]")
	assert.Contains(t, out.String(), "clam.example is 192.0.2.10")

	res = d.DispatchLine(context.Background(), "lookup-hosts nowhere.invalid")
	assert.Equal(t, dispatch.CodeError, res.Code)
	assert.ErrorContains(t, res.Err, "nowhere.invalid")
}

func TestGoodName(t *testing.T) {
	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, goodNameSpec()))

	res := d.DispatchLine(context.Background(), "good-name")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Good Name!")

	out.Reset()
	res = d.DispatchLine(context.Background(), "good-name hello")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "hello")
}

func TestTriple(t *testing.T) {
	old := tripleDelay
	tripleDelay = time.Millisecond
	t.Cleanup(func() { tripleDelay = old })

	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, tripleSpec()))

	res := d.DispatchLine(context.Background(), "triple 7")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Input is 7")
	assert.Equal(t, 3, strings.Count(out.String(), "7 * 3 = 21"))
}

func TestTripleCancelled(t *testing.T) {
	d, _ := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, tripleSpec()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := d.DispatchLine(ctx, "triple 7")

	assert.Equal(t, dispatch.CodeInterrupt, res.Code)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestPick(t *testing.T) {
	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, pickSpec()))

	res := d.DispatchLine(context.Background(), "pick style=toast")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Style is 'toast' code is 13")

	out.Reset()
	res = d.DispatchLine(context.Background(), "pick style=test stuff=[red,blue] code=14")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Style is 'test' code is 14")
	assert.Contains(t, out.String(), "Stuff is [red blue]")

	res = d.DispatchLine(context.Background(), "pick style=bogus")
	assert.Equal(t, dispatch.CodeValue, res.Code)

	res = d.DispatchLine(context.Background(), "pick style=test stuff=purple")
	assert.Equal(t, dispatch.CodeValue, res.Code)

	res = d.DispatchLine(context.Background(), "pick")
	assert.Equal(t, dispatch.CodeMissing, res.Code)
}

func TestRunExecutesCommand(t *testing.T) {
	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, runSpec()))

	res := d.DispatchLine(context.Background(), `run "echo streamed"`)
	require.NoError(t, res.Err)
	assert.Equal(t, 0, res.Code)
	assert.Contains(t, out.String(), "streamed")
}

func TestRunPropagatesExitCode(t *testing.T) {
	d, _ := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, runSpec()))

	res := d.DispatchLine(context.Background(), "run false")
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Code)
}

func TestRunInDirectory(t *testing.T) {
	dir := t.TempDir()
	d, out := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, runSpec()))

	res := d.DispatchLine(context.Background(), fmt.Sprintf("run pwd dir=%s", dir))
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), filepath.Base(dir))
}

func TestRunRejectsEmptyCommand(t *testing.T) {
	d, _ := testutils.NewDispatcher(t, testutils.MustBuildCommand(t, runSpec()))

	res := d.DispatchLine(context.Background(), `run cmd=""`)
	assert.Equal(t, dispatch.CodeError, res.Code)
	assert.ErrorContains(t, res.Err, "empty")
}

func TestDaemonGroup(t *testing.T) {
	d, out := testutils.NewDispatcher(t, testutils.MustBuildGroup(t, daemonSpec()))

	res := d.DispatchLine(context.Background(), "daemon start resolver workers=4")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Starting resolver with 4 workers (nice 0)")

	out.Reset()
	res = d.DispatchLine(context.Background(), "daemon start resolver nice=10")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Starting resolver with 1 workers (nice 10)")

	out.Reset()
	res = d.DispatchLine(context.Background(), "daemon stop resolver force=true")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Killing resolver")

	out.Reset()
	res = d.DispatchLine(context.Background(), "daemon stop resolver")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "Stopping resolver")

	res = d.DispatchLine(context.Background(), "daemon")
	assert.Equal(t, dispatch.CodeUsage, res.Code)
}
