// Package output provides the console output system for clamshell.
// Printers render semantic text through an injected StyleProvider, so the
// rest of the program never depends on a concrete theme implementation.
package output

// StyleProvider is implemented by anything that can hand out text styles,
// typically a Theme loaded from an embedded YAML file.
// The output package depends only on this interface, not on concrete themes.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	// Semantic types include: "info", "success", "warning", "error", "command", "variable", etc.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to hand out styles.
	// Printers fall back to plain text when it returns false.
	IsAvailable() bool

	// GetThemeType returns the rendering background the theme targets
	// ("dark", "light", "notty" or "auto"). Markdown renderers use it to
	// pick a matching style sheet.
	GetThemeType() string
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it, as do the plain fallback styles below.
type TextStyle interface {
	// Render applies styling to the given text and returns the styled result.
	Render(text string) string
}

// Mode defines the output modes a Printer can operate in.
type Mode int

const (
	// ModeAuto picks styled or plain output based on the configured provider
	ModeAuto Mode = iota

	// ModeStyled forces styled output (colors, formatting)
	ModeStyled

	// ModePlain forces plain text output with semantic prefixes
	ModePlain

	// ModeJSON emits one JSON object per message for machine consumption
	ModeJSON
)

// SemanticType names the meaning of a piece of output so themes can style
// the same meaning consistently.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"

	// SemanticCommand represents a command name or invocation line.
	SemanticCommand SemanticType = "command"
	// SemanticVariable represents an argument or variable name.
	SemanticVariable SemanticType = "variable"
	// SemanticKeyword represents keyword or reserved word text.
	SemanticKeyword SemanticType = "keyword"

	// SemanticHighlight represents highlighted or emphasized text.
	SemanticHighlight SemanticType = "highlight"
	// SemanticBold represents bold text styling.
	SemanticBold SemanticType = "bold"

	// SemanticCode represents inline code text.
	SemanticCode SemanticType = "code"
	// SemanticCodeBlock represents multi-line code block text.
	SemanticCodeBlock SemanticType = "code_block"
	// SemanticList represents list enumerators and bullet points.
	SemanticList SemanticType = "list"
)
