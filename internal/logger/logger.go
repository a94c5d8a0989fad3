// Package logger provides centralized logging functionality for clamshell.
// It configures structured logging with support for log levels, file output
// and styled per-component loggers.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout clamshell.
var Logger *log.Logger

// output tracks the configured destination so component loggers write to the
// same place as the global one.
var output io.Writer = os.Stderr

func init() {
	Logger = log.New(os.Stderr)

	// No timestamps; shell output interleaves with log lines
	Logger.SetTimeFormat("")

	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the global logger. Explicit values take precedence over
// the CLAM_LOG_LEVEL and CLAM_LOG_FILE environment variables. With quiet set
// all log output is discarded regardless of level.
func Configure(logLevel string, logFile string, quiet bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("CLAM_LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}

	file := logFile
	if file == "" {
		file = os.Getenv("CLAM_LOG_FILE")
	}

	output = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		output = f
	}
	if quiet {
		output = io.Discard
	}

	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))
	return nil
}

// SetVerbosity maps session verbosity onto log levels: 0 keeps the default
// info level, 1 enables debug, 2 additionally reports callers.
func SetVerbosity(level int) {
	switch {
	case level <= 0:
		Logger.SetLevel(log.InfoLevel)
		Logger.SetReportCaller(false)
	case level == 1:
		Logger.SetLevel(log.DebugLevel)
		Logger.SetReportCaller(false)
	default:
		Logger.SetLevel(log.DebugLevel)
		Logger.SetReportCaller(true)
	}
}

// parseLogLevel converts string to log level
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// NewStyledLogger creates a new logger with custom styles and prefix for
// component-specific logging (e.g. "Dispatcher", "Shell", "Completion").
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")). // Blue background
		Foreground(lipgloss.Color("15"))  // White text

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")). // Red background
		Foreground(lipgloss.Color("15"))   // White text

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")). // Gray background
		Foreground(lipgloss.Color("15"))   // White text

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")). // Orange background
		Foreground(lipgloss.Color("15"))   // White text

	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("88")). // Dark red background
		Foreground(lipgloss.Color("15"))  // White text

	// Key styling for the fields the dispatcher and shell log most
	styles.Keys["state"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))   // Purple
	styles.Keys["input"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))   // Blue
	styles.Keys["id"] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))     // Gray
	styles.Keys["code"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))   // Orange
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))  // Red
	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46")) // Green

	styles.Values["state"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})

	componentLogger.SetStyles(styles)
	componentLogger.SetTimeFormat("")

	// Match the global logger's level
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
