// Package shell assembles the clamshell runtime behind a single front door:
// an App owns the registry, dispatcher, completion engine and output plumbing,
// and drives whichever front-end fits the process's stdin: interactive,
// script-from-stdin, or one-shot dispatch of argv.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"clamshell/internal/builtin"
	"clamshell/internal/completion"
	"clamshell/internal/config"
	"clamshell/internal/descriptor"
	"clamshell/internal/dispatch"
	"clamshell/internal/help"
	"clamshell/internal/logger"
	"clamshell/internal/output"
	"clamshell/internal/registry"
	"clamshell/internal/usagelog"
	"clamshell/pkg/clamtypes"
)

// Options configure an App beyond what the user's config file provides.
// Non-zero override fields take precedence over the loaded config.
type Options struct {
	// Session is the application's context object. Nil gets a fresh
	// clamtypes.BaseContext.
	Session clamtypes.Context
	// Commands are built descriptors registered after the builtins.
	Commands []*descriptor.Command
	// Version is reported by the interactive banner.
	Version string
	// Out redirects handler and shell output away from os.Stdout, for
	// embedding and tests.
	Out io.Writer
	// ConfigFile reads configuration from an explicit path instead of the
	// user's config directory. Unlike the default lookup, the file must exist.
	ConfigFile string

	// Config overrides, applied over the loaded file and environment.
	Prompt         string
	HistoryFile    string
	TranscriptPath string
	UsageLog       string
	Color          string
	Theme          string
	// AutoCorrect enables correction even when the config file leaves it off.
	AutoCorrect bool
}

// App is one assembled shell runtime. Create it with New, run it with Main
// or one of the front-end methods, and release its resources with Close.
type App struct {
	name    string
	version string
	cfg     *config.Config

	reg        *registry.Registry
	session    clamtypes.Context
	dispatcher *dispatch.Dispatcher
	engine     *completion.Engine
	renderer   *help.Renderer
	printer    *output.Printer
	usage      *usagelog.Recorder
	transcript *output.Transcript
	out        io.Writer
	logger     *log.Logger
}

// New loads configuration, wires the runtime and registers the builtin
// commands followed by opts.Commands. Any build or registration failure is
// returned; a shell with a half-registered command set never starts.
func New(name string, opts Options) (*App, error) {
	cfg, err := loadConfig(name, opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts)

	app := &App{
		name:    name,
		version: opts.Version,
		cfg:     cfg,
		reg:     registry.New(),
		session: opts.Session,
		out:     opts.Out,
		logger:  logger.NewStyledLogger("Shell"),
	}
	if app.version == "" {
		app.version = "dev"
	}
	if app.session == nil {
		app.session = &clamtypes.BaseContext{}
	}
	if app.out == nil {
		app.out = os.Stdout
	}

	if cfg.TranscriptPath != "" {
		transcript, err := output.NewTranscript(app.out, cfg.TranscriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open transcript: %w", err)
		}
		app.transcript = transcript
		app.out = transcript
	}

	if cfg.UsageLog != "" {
		usage, err := usagelog.Open(cfg.UsageLog)
		if err != nil {
			return nil, err
		}
		app.usage = usage
	}

	styles := resolveStyles(cfg)
	app.printer = output.NewPrinter(output.WithStyles(styles), output.WithWriter(app.out))
	app.renderer = help.NewRenderer(styles)

	if err := builtin.Register(app.reg, app.renderer, app.usage); err != nil {
		return nil, err
	}
	for _, cmd := range opts.Commands {
		if err := app.reg.Register(cmd); err != nil {
			return nil, err
		}
	}

	app.engine = completion.NewEngine(app.reg)
	app.dispatcher = dispatch.New(app.reg, app.session, app.usage, app.out, os.Stderr)
	return app, nil
}

// loadConfig reads the explicit config file when one is given, the user's
// config directory otherwise.
func loadConfig(name, path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(name, path)
	}
	return config.Load(name)
}

// applyOverrides copies the non-zero Options fields over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.HistoryFile != "" {
		cfg.HistoryFile = opts.HistoryFile
	}
	if opts.TranscriptPath != "" {
		cfg.TranscriptPath = opts.TranscriptPath
	}
	if opts.UsageLog != "" {
		cfg.UsageLog = opts.UsageLog
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.AutoCorrect {
		cfg.AutoCorrect = true
	}
}

// resolveStyles picks the style provider for the configured color setting.
// Nil means unstyled output.
func resolveStyles(cfg *config.Config) output.StyleProvider {
	switch cfg.Color {
	case "never":
		return nil
	case "always":
		return output.LoadTheme(cfg.Theme)
	default:
		if output.SupportsColor() {
			return output.LoadTheme(cfg.Theme)
		}
		return nil
	}
}

// Registry exposes the command registry so applications can register further
// commands, including after a front-end has started.
func (a *App) Registry() *registry.Registry { return a.reg }

// Session returns the session context handed to every handler.
func (a *App) Session() clamtypes.Context { return a.session }

// Dispatcher returns the app's dispatcher.
func (a *App) Dispatcher() *dispatch.Dispatcher { return a.dispatcher }

// Completer returns the readline adapter over the app's completion engine.
func (a *App) Completer() *completion.ReadlineCompleter {
	return completion.NewReadlineCompleter(a.engine)
}

// Main selects a front-end from the process's invocation shape: argv tokens
// dispatch once, an interactive stdin starts the loop, and piped stdin runs
// as a script. The return value is the process exit code.
func (a *App) Main(argv []string) int {
	if len(argv) > 0 {
		res := a.dispatcher.Dispatch(context.Background(), argv)
		if res.Err != nil {
			a.printFailure(res)
		}
		return res.Code
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return a.RunInteractive()
	}
	return a.RunScript(os.Stdin)
}

// Close releases the transcript and the usage journal. Safe to call when
// neither is configured.
func (a *App) Close() error {
	var errs []error
	if a.transcript != nil {
		errs = append(errs, a.transcript.Close())
	}
	if a.usage != nil {
		errs = append(errs, a.usage.Close())
	}
	return errors.Join(errs...)
}

// historyPath is the readline history location: the configured file, or
// history under the app's config directory.
func (a *App) historyPath() string {
	if a.cfg.HistoryFile != "" {
		return a.cfg.HistoryFile
	}
	dir, err := config.Dir(a.name)
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

// printFailure reports a failed invocation on the console. Unknown commands
// get near-miss hints; interrupts are reported quietly since the user caused
// them.
func (a *App) printFailure(res *dispatch.Result) {
	if res.Code == dispatch.CodeInterrupt {
		a.printer.Warning("interrupted")
		return
	}
	a.printer.Error(res.Err.Error())
	a.printHint(res.Err)
}

// printHint adds the near-miss suggestion line for unknown-command failures.
func (a *App) printHint(err error) {
	var unknown *registry.UnknownCommandError
	if !errors.As(err, &unknown) {
		return
	}
	if hint := registry.FormatSuggestions(unknown.Suggestions); hint != "" {
		a.printer.Info(hint)
	}
}

// skippable reports whether a line holds no command: blank, or a # comment.
func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}
