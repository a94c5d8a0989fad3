package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clamshell/internal/config"
	"clamshell/internal/descriptor"
	"clamshell/internal/testutils"
	"clamshell/pkg/clamtypes"
)

// newTestApp builds an App named clamtest with an isolated config directory
// and captured output.
func newTestApp(t *testing.T, opts Options) (*App, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out := &bytes.Buffer{}
	if opts.Out == nil {
		opts.Out = out
	}
	app, err := New("clamtest", opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, out
}

func echoCommand(t *testing.T) *descriptor.Command {
	t.Helper()
	cmd, err := descriptor.Build(descriptor.CommandSpec{
		Name: "echo",
		Help: "Print the given text",
		Args: []descriptor.ArgSpec{
			{Name: "text", Description: "Text to print", Type: descriptor.TypeString, Positional: true},
		},
		Handler: func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
			_, err := fmt.Fprintln(inv.Out, inv.Args.String("text"))
			return 0, err
		},
	})
	require.NoError(t, err)
	return cmd
}

func codeCommand(t *testing.T, code int) *descriptor.Command {
	t.Helper()
	cmd, err := descriptor.Build(descriptor.CommandSpec{
		Name: "fail",
		Help: "Return a fixed nonzero code",
		Handler: func(_ context.Context, _ *clamtypes.Invocation) (int, error) {
			return code, nil
		},
	})
	require.NoError(t, err)
	return cmd
}

func TestNewRegistersBuiltinsAndAppCommands(t *testing.T) {
	app, _ := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	for _, name := range []string{"help", "exit", "verbose", "history", "echo"} {
		_, ok := app.Registry().Lookup(name)
		assert.True(t, ok, "expected %q to resolve", name)
	}
}

func TestNewRejectsCommandShadowingBuiltin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	clash, err := descriptor.Build(descriptor.CommandSpec{
		Name:    "help",
		Help:    "Shadows the builtin",
		Handler: func(_ context.Context, _ *clamtypes.Invocation) (int, error) { return 0, nil },
	})
	require.NoError(t, err)

	_, err = New("clamtest", Options{Commands: []*descriptor.Command{clash}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestNewWithExplicitConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("prompt = \"custom> \"\n"), 0644))

	app, err := New("clamtest", Options{Out: &bytes.Buffer{}, ConfigFile: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	assert.Equal(t, "custom> ", app.cfg.Prompt)

	_, err = New("clamtest", Options{Out: &bytes.Buffer{}, ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
}

func TestRunScriptDispatchesLines(t *testing.T) {
	app, out := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	script := "# a comment\n\necho hello\necho world\n"
	code := app.RunScript(strings.NewReader(script))
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "world")
}

func TestRunScriptFailsFastOnError(t *testing.T) {
	app, out := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	script := "echo one\nbogus\necho two\n"
	code := app.RunScript(strings.NewReader(script))
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "one")
	assert.Contains(t, out.String(), "line 2")
	assert.NotContains(t, out.String(), "two")
}

func TestRunScriptStopsOnNonzeroCode(t *testing.T) {
	app, out := newTestApp(t, Options{
		Commands: []*descriptor.Command{echoCommand(t), codeCommand(t, 3)},
	})

	script := "echo one\nfail\necho two\n"
	code := app.RunScript(strings.NewReader(script))
	assert.Equal(t, 3, code)
	assert.NotContains(t, out.String(), "two")
}

func TestRunScriptHonorsExit(t *testing.T) {
	app, out := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	script := "echo one\nexit\necho two\n"
	code := app.RunScript(strings.NewReader(script))
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "one")
	assert.NotContains(t, out.String(), "two")
}

func TestScriptNotifiesSessionListener(t *testing.T) {
	session := &testutils.RecordingSession{}
	app, _ := newTestApp(t, Options{
		Session:  session,
		Commands: []*descriptor.Command{echoCommand(t)},
	})

	code := app.RunScript(strings.NewReader("echo one\necho two\n"))
	require.Equal(t, 0, code)

	assert.Equal(t, [][]string{{"echo"}, {"echo"}}, session.Dispatched())
	assert.Zero(t, session.InteractiveCalls())
}

func TestMainDispatchesArgv(t *testing.T) {
	app, out := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	code := app.Main([]string{"echo", "argv"})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "argv")

	out.Reset()
	code = app.Main([]string{"nope"})
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "unknown command")
}

func TestMainWithEmptyStdinRunsScriptMode(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	// Under go test stdin is not a terminal, so Main falls through to
	// script mode and returns on EOF.
	assert.Equal(t, 0, app.Main(nil))
}

func TestAutoCorrectSingleSuggestion(t *testing.T) {
	app, out := newTestApp(t, Options{
		Commands:    []*descriptor.Command{echoCommand(t)},
		AutoCorrect: true,
	})

	res := app.dispatchInteractive("ecoh corrected")
	require.NoError(t, res.Err)
	assert.Contains(t, out.String(), "correcting")
	assert.Contains(t, out.String(), "corrected")
}

func TestAutoCorrectDisabledPrintsSuggestions(t *testing.T) {
	app, out := newTestApp(t, Options{Commands: []*descriptor.Command{echoCommand(t)}})

	res := app.dispatchInteractive("ecoh corrected")
	require.Error(t, res.Err)
	assert.Contains(t, out.String(), "unknown command")
	assert.Contains(t, out.String(), "Did you mean")
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default("clamtest")
	applyOverrides(cfg, Options{
		Prompt:         "x> ",
		HistoryFile:    "hist",
		TranscriptPath: "trans",
		UsageLog:       "usage",
		Color:          "never",
		Theme:          "dark",
		AutoCorrect:    true,
	})
	assert.Equal(t, "x> ", cfg.Prompt)
	assert.Equal(t, "hist", cfg.HistoryFile)
	assert.Equal(t, "trans", cfg.TranscriptPath)
	assert.Equal(t, "usage", cfg.UsageLog)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.AutoCorrect)
}

func TestResolveStyles(t *testing.T) {
	cfg := config.Default("clamtest")

	cfg.Color = "never"
	assert.Nil(t, resolveStyles(cfg))

	cfg.Color = "always"
	cfg.Theme = "dark"
	styles := resolveStyles(cfg)
	require.NotNil(t, styles)
	assert.Equal(t, "dark", styles.GetThemeType())

	// Test processes have no terminal on stdout, so auto resolves to plain.
	cfg.Color = "auto"
	assert.Nil(t, resolveStyles(cfg))
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	app, err := New("clamtest", Options{Out: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	path := app.historyPath()
	assert.Equal(t, filepath.Join(home, "clamtest", "history"), path)
	_, statErr := os.Stat(filepath.Dir(path))
	assert.NoError(t, statErr)

	app.cfg.HistoryFile = "/tmp/custom_history"
	assert.Equal(t, "/tmp/custom_history", app.historyPath())
}

func TestTranscriptTee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	app, out := newTestApp(t, Options{
		Commands:       []*descriptor.Command{echoCommand(t)},
		TranscriptPath: path,
	})

	code := app.RunScript(strings.NewReader("echo recorded\n"))
	require.Equal(t, 0, code)
	require.NoError(t, app.Close())

	assert.Contains(t, out.String(), "recorded")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recorded")
}

func TestSkippable(t *testing.T) {
	assert.True(t, skippable(""))
	assert.True(t, skippable("# comment"))
	assert.True(t, skippable("#"))
	assert.False(t, skippable("echo hi"))
}
