package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer renders semantic console text. Styling comes from an injected
// StyleProvider; without one, or when plain mode is forced, a prefix-based
// plain style stands in. Writes are best effort: console write errors are
// dropped rather than surfaced to handlers.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	styles StyleProvider
	mode   Mode
	plain  bool // ignore the style provider even when it is available
	silent bool
	prefix string
}

// NewPrinter builds a printer writing to os.Stdout in auto mode. Options
// override the writer, mode and styling.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{w: os.Stdout, mode: ModeAuto}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes text as-is, with no styling and no trailing newline.
func (p *Printer) Print(text string) { p.emit(SemanticPlain, text, false) }

// Printf formats and writes text without styling.
func (p *Printer) Printf(format string, args ...any) {
	p.emit(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println writes text with a trailing newline.
func (p *Printer) Println(text string) { p.emit(SemanticPlain, text, true) }

// Info writes one informational line.
func (p *Printer) Info(text string) { p.emit(SemanticInfo, text, true) }

// Success writes one success line.
func (p *Printer) Success(text string) { p.emit(SemanticSuccess, text, true) }

// Warning writes one warning line.
func (p *Printer) Warning(text string) { p.emit(SemanticWarning, text, true) }

// Error writes one error line.
func (p *Printer) Error(text string) { p.emit(SemanticError, text, true) }

// Command writes a command name or invocation line, without a newline.
func (p *Printer) Command(text string) { p.emit(SemanticCommand, text, false) }

// Code writes inline code.
func (p *Printer) Code(text string) { p.emit(SemanticCode, text, false) }

// CodeBlock writes a multi-line code block followed by a newline.
func (p *Printer) CodeBlock(text string) { p.emit(SemanticCodeBlock, text, true) }

// emit is the single funnel every helper goes through.
func (p *Printer) emit(semantic SemanticType, text string, newline bool) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var out string
	if p.mode == ModeJSON {
		out = jsonLine(semantic, text)
	} else {
		out = p.styleFor(semantic).Render(text)
		if newline && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
	}
	if p.prefix != "" {
		out = p.prefix + out
	}
	_, _ = io.WriteString(p.w, out)
}

// styleFor picks the provider's style when one is wired and usable, and the
// plain prefix style otherwise.
func (p *Printer) styleFor(semantic SemanticType) TextStyle {
	if !p.plain && p.styles != nil && p.styles.IsAvailable() {
		return p.styles.GetStyle(string(semantic))
	}
	return NewPlainStyleProvider().GetStyle(string(semantic))
}

// jsonLine encodes one message as a single JSON object on its own line.
// Encoding failures degrade to the raw text.
func jsonLine(semantic SemanticType, text string) string {
	b, err := json.Marshal(struct {
		Type    SemanticType `json:"type"`
		Message string       `json:"message"`
	}{semantic, text})
	if err != nil {
		return text + "\n"
	}
	return string(b) + "\n"
}
