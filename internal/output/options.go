package output

import "io"

// Option configures a Printer at construction time.
type Option func(*Printer)

// WithWriter directs output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.w = w
		}
	}
}

// WithStyles wires a StyleProvider. A nil or unavailable provider is
// ignored, leaving the plain fallback in charge.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styles = provider
		}
	}
}

// WithMode pins the output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) { p.mode = mode }
}

// WithPrefix prepends prefix to every emitted message.
func WithPrefix(prefix string) Option {
	return func(p *Printer) { p.prefix = prefix }
}

// PlainText disables styling outright, e.g. for piped output.
func PlainText() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.plain = true
	}
}

// TestMode makes output deterministic regardless of terminal capabilities.
// It is PlainText under a name that states the intent.
func TestMode() Option { return PlainText() }

// JSON emits one JSON object per message.
func JSON() Option {
	return func(p *Printer) { p.mode = ModeJSON }
}

// Silent drops all output.
func Silent() Option {
	return func(p *Printer) { p.silent = true }
}
