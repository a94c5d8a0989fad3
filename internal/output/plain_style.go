package output

import "strings"

// PlainTextStyle renders text with an optional semantic prefix instead of
// color.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle returns a style that prepends prefix to rendered text.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.
func (s *PlainTextStyle) Render(text string) string {
	return s.prefix + text
}

// backtickStyle renders inline code between backticks.
type backtickStyle struct{}

func (backtickStyle) Render(text string) string { return "`" + text + "`" }

// indentStyle renders a code block with two-space indentation, leaving
// blank lines untouched.
type indentStyle struct{}

func (indentStyle) Render(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

// plainPrefixes carries the semantic meaning that color would otherwise
// convey. Semantics without an entry render bare.
var plainPrefixes = map[string]string{
	string(SemanticInfo):    "ℹ ",
	string(SemanticSuccess): "✓ ",
	string(SemanticWarning): "⚠ ",
	string(SemanticError):   "✗ ",
	string(SemanticList):    "• ",
}

// PlainStyleProvider is the fallback provider used when no theme is
// configured or plain output is forced.
type PlainStyleProvider struct{}

// NewPlainStyleProvider returns the plain fallback provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle implements StyleProvider.
func (*PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch semantic {
	case string(SemanticCode):
		return backtickStyle{}
	case string(SemanticCodeBlock):
		return indentStyle{}
	}
	return NewPlainTextStyle(plainPrefixes[semantic])
}

// IsAvailable implements StyleProvider. Plain output always works.
func (*PlainStyleProvider) IsAvailable() bool { return true }

// GetThemeType implements StyleProvider.
func (*PlainStyleProvider) GetThemeType() string { return "notty" }
