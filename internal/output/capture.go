package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects printer output for test assertions.
type CaptureBuffer struct {
	buf bytes.Buffer
}

// NewCaptureBuffer returns an empty capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// String returns everything captured so far.
func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines splits the captured text on newlines, dropping a trailing newline.
func (c *CaptureBuffer) Lines() []string {
	text := c.buf.String()
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Len returns the number of captured bytes.
func (c *CaptureBuffer) Len() int { return c.buf.Len() }

// Reset discards the captured output.
func (c *CaptureBuffer) Reset() { c.buf.Reset() }

// Contains reports whether text appears anywhere in the captured output.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.buf.String(), text)
}

// CaptureOutput runs fn against a plain-mode printer and returns what it
// wrote.
func CaptureOutput(fn func(*Printer)) string {
	buf := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buf), TestMode()))
	return buf.String()
}

// CaptureOutputWithStyles is CaptureOutput with a style provider wired in.
func CaptureOutputWithStyles(provider StyleProvider, fn func(*Printer)) string {
	buf := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buf), WithStyles(provider)))
	return buf.String()
}

// MockStyleProvider wraps rendered text in [semantic]...[/semantic] markers
// so tests can assert which style was applied without parsing ANSI.
type MockStyleProvider struct {
	available bool
	themeType string
	styles    map[string]TextStyle
}

// NewMockStyleProvider returns an available mock with the auto theme type.
func NewMockStyleProvider() *MockStyleProvider {
	return &MockStyleProvider{
		available: true,
		themeType: "auto",
		styles:    make(map[string]TextStyle),
	}
}

// SetStyle overrides the style returned for one semantic type.
func (m *MockStyleProvider) SetStyle(semantic string, style TextStyle) {
	m.styles[semantic] = style
}

// SetAvailable toggles availability so tests can force the plain fallback.
func (m *MockStyleProvider) SetAvailable(v bool) { m.available = v }

// GetStyle implements StyleProvider.
func (m *MockStyleProvider) GetStyle(semantic string) TextStyle {
	if s, ok := m.styles[semantic]; ok {
		return s
	}
	return markerStyle(semantic)
}

// IsAvailable implements StyleProvider.
func (m *MockStyleProvider) IsAvailable() bool { return m.available }

// GetThemeType implements StyleProvider.
func (m *MockStyleProvider) GetThemeType() string { return m.themeType }

// markerStyle renders text between open and close markers for one semantic.
type markerStyle string

func (s markerStyle) Render(text string) string {
	return "[" + string(s) + "]" + text + "[/" + string(s) + "]"
}
