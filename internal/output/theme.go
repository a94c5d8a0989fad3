package output

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed themes/default.yaml
var defaultThemeData []byte

//go:embed themes/dark.yaml
var darkThemeData []byte

//go:embed themes/light.yaml
var lightThemeData []byte

//go:embed themes/plain.yaml
var plainThemeData []byte

// ThemeConfig is the YAML shape of an embedded theme file.
type ThemeConfig struct {
	// Name is the theme identifier (e.g., "default", "dark", "light", "plain")
	Name string `yaml:"name"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty"`

	// Background declares the terminal background the theme targets
	// ("dark", "light", "notty" or "auto" for adaptive themes)
	Background string `yaml:"background,omitempty"`

	// Styles contains the style definitions for the semantic types
	Styles ThemeStyles `yaml:"styles"`
}

// ThemeStyles defines the styling configuration for each semantic type.
type ThemeStyles struct {
	Command   StyleConfig `yaml:"command"`
	Variable  StyleConfig `yaml:"variable"`
	Keyword   StyleConfig `yaml:"keyword"`
	Success   StyleConfig `yaml:"success"`
	Error     StyleConfig `yaml:"error"`
	Warning   StyleConfig `yaml:"warning"`
	Info      StyleConfig `yaml:"info"`
	Highlight StyleConfig `yaml:"highlight"`
	Bold      StyleConfig `yaml:"bold"`
	Code      StyleConfig `yaml:"code"`
	CodeBlock StyleConfig `yaml:"code_block"`
	List      StyleConfig `yaml:"list"`
}

// StyleConfig defines the visual styling for one semantic type.
// Colors are either plain strings or light/dark mappings for adaptive colors.
type StyleConfig struct {
	// Foreground color, a hex color, named color or adaptive color mapping
	Foreground interface{} `yaml:"foreground,omitempty"`

	// Background color, same forms as Foreground
	Background interface{} `yaml:"background,omitempty"`

	// Bold text decoration
	Bold *bool `yaml:"bold,omitempty"`

	// Italic text decoration
	Italic *bool `yaml:"italic,omitempty"`

	// Underline text decoration
	Underline *bool `yaml:"underline,omitempty"`
}

// Theme is a StyleProvider backed by lipgloss styles parsed from an
// embedded YAML theme file.
type Theme struct {
	name       string
	background string
	styles     map[SemanticType]lipgloss.Style
}

var (
	themesOnce sync.Once
	themes     map[string]*Theme
)

// loadThemes parses the embedded theme files once.
func loadThemes() {
	files := map[string][]byte{
		"default": defaultThemeData,
		"dark":    darkThemeData,
		"light":   lightThemeData,
		"plain":   plainThemeData,
	}

	themes = make(map[string]*Theme, len(files))
	for name, data := range files {
		theme, err := parseTheme(data)
		if err != nil {
			// Embedded files only fail to parse when edited badly,
			// keep the name usable with an unstyled theme.
			themes[name] = emptyTheme(name)
			continue
		}
		themes[name] = theme
	}
}

// parseTheme parses one YAML theme file into a Theme.
func parseTheme(data []byte) (*Theme, error) {
	var config ThemeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return &Theme{
		name:       config.Name,
		background: config.Background,
		styles: map[SemanticType]lipgloss.Style{
			SemanticCommand:   buildStyle(config.Styles.Command),
			SemanticVariable:  buildStyle(config.Styles.Variable),
			SemanticKeyword:   buildStyle(config.Styles.Keyword),
			SemanticSuccess:   buildStyle(config.Styles.Success),
			SemanticError:     buildStyle(config.Styles.Error),
			SemanticWarning:   buildStyle(config.Styles.Warning),
			SemanticInfo:      buildStyle(config.Styles.Info),
			SemanticHighlight: buildStyle(config.Styles.Highlight),
			SemanticBold:      buildStyle(config.Styles.Bold),
			SemanticCode:      buildStyle(config.Styles.Code),
			SemanticCodeBlock: buildStyle(config.Styles.CodeBlock),
			SemanticList:      buildStyle(config.Styles.List),
		},
	}, nil
}

// buildStyle converts a StyleConfig to a lipgloss.Style.
func buildStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if config.Foreground != nil {
		if color := parseColor(config.Foreground); color != nil {
			style = style.Foreground(color)
		}
	}
	if config.Background != nil {
		if color := parseColor(config.Background); color != nil {
			style = style.Background(color)
		}
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}

	return style
}

// parseColor parses a color value that is either a plain string or a
// light/dark mapping for adaptive colors.
func parseColor(colorValue interface{}) lipgloss.TerminalColor {
	switch v := colorValue.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		if light, hasLight := v["light"].(string); hasLight {
			if dark, hasDark := v["dark"].(string); hasDark {
				return lipgloss.AdaptiveColor{Light: light, Dark: dark}
			}
		}
		return nil
	default:
		return nil
	}
}

// emptyTheme returns a theme of the given name with no styling at all.
func emptyTheme(name string) *Theme {
	return &Theme{
		name:       name,
		background: "notty",
		styles:     map[SemanticType]lipgloss.Style{},
	}
}

// LoadTheme returns the embedded theme with the given name. Matching is
// case-insensitive and the empty name selects the default theme. Unknown
// names fall back to the plain theme so callers always get a usable value.
func LoadTheme(name string) *Theme {
	themesOnce.Do(loadThemes)

	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "default"
	}

	if theme, ok := themes[normalized]; ok {
		return theme
	}
	return themes["plain"]
}

// ThemeNames returns the names of all embedded themes, sorted.
func ThemeNames() []string {
	themesOnce.Do(loadThemes)

	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the theme's identifier.
func (t *Theme) Name() string {
	return t.name
}

// Style returns the raw lipgloss style for a semantic type. Packages that
// compose lipgloss values directly, like the help renderer, use this instead
// of GetStyle.
func (t *Theme) Style(semantic SemanticType) lipgloss.Style {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// GetStyle implements StyleProvider.GetStyle.
func (t *Theme) GetStyle(semantic string) TextStyle {
	return lipglossTextStyle{style: t.Style(SemanticType(semantic))}
}

// IsAvailable implements StyleProvider.IsAvailable.
func (t *Theme) IsAvailable() bool {
	return true
}

// GetThemeType implements StyleProvider.GetThemeType.
func (t *Theme) GetThemeType() string {
	if t.background == "" {
		return "auto"
	}
	return t.background
}

// String returns a string representation for debugging.
func (t *Theme) String() string {
	return fmt.Sprintf("Theme{name: %s, background: %s}", t.name, t.GetThemeType())
}

// lipglossTextStyle adapts a lipgloss.Style to the TextStyle interface.
// lipgloss.Style.Render is variadic, so the adapter is needed.
type lipglossTextStyle struct {
	style lipgloss.Style
}

// Render implements TextStyle.Render.
func (l lipglossTextStyle) Render(text string) string {
	return l.style.Render(text)
}
