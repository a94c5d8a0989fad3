package output

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	globalMu      sync.RWMutex
	globalPrinter = NewPrinter()
)

// SetGlobalPrinter replaces the process-wide printer.
func SetGlobalPrinter(p *Printer) {
	globalMu.Lock()
	globalPrinter = p
	globalMu.Unlock()
}

// GetGlobalPrinter returns the process-wide printer.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal rebuilds the process-wide printer from options.
func ConfigureGlobal(opts ...Option) {
	SetGlobalPrinter(NewPrinter(opts...))
}

// Package-level helpers route through the global printer so code without a
// Printer in hand can still emit semantic output.

// Print writes text through the global printer.
func Print(text string) { GetGlobalPrinter().Print(text) }

// Printf writes formatted text through the global printer.
func Printf(format string, args ...any) { GetGlobalPrinter().Printf(format, args...) }

// Println writes a line through the global printer.
func Println(text string) { GetGlobalPrinter().Println(text) }

// Info writes an informational line through the global printer.
func Info(text string) { GetGlobalPrinter().Info(text) }

// Success writes a success line through the global printer.
func Success(text string) { GetGlobalPrinter().Success(text) }

// Warning writes a warning line through the global printer.
func Warning(text string) { GetGlobalPrinter().Warning(text) }

// Error writes an error line through the global printer.
func Error(text string) { GetGlobalPrinter().Error(text) }

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SupportsColor reports whether stdout can take colored output. It honors
// NO_COLOR and CLICOLOR_FORCE through the termenv profile.
func SupportsColor() bool {
	return IsTerminal() && termenv.EnvColorProfile() != termenv.Ascii
}
