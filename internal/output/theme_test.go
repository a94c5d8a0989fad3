package output

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Theme must satisfy StyleProvider so printers can take it directly.
var _ StyleProvider = (*Theme)(nil)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	expected := []string{"dark", "default", "light", "plain"}

	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Expected theme names %v, got %v", expected, names)
	}
}

func TestLoadThemeSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty name selects default", "", "default"},
		{"known name", "dark", "dark"},
		{"matching is case insensitive", "DARK", "dark"},
		{"surrounding spaces are ignored", "  light ", "light"},
		{"unknown name falls back to plain", "solarized", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := LoadTheme(tt.input)
			if theme == nil {
				t.Fatal("LoadTheme returned nil")
			}
			if theme.Name() != tt.expected {
				t.Errorf("Expected theme %q, got %q", tt.expected, theme.Name())
			}
		})
	}
}

func TestThemeTypes(t *testing.T) {
	tests := []struct {
		theme    string
		expected string
	}{
		{"default", "auto"},
		{"dark", "dark"},
		{"light", "light"},
		{"plain", "notty"},
	}

	for _, tt := range tests {
		if got := LoadTheme(tt.theme).GetThemeType(); got != tt.expected {
			t.Errorf("Theme %q: expected type %q, got %q", tt.theme, tt.expected, got)
		}
	}
}

func TestThemeStylesParsed(t *testing.T) {
	dark := LoadTheme("dark")

	errStyle := dark.Style(SemanticError)
	if !errStyle.GetBold() {
		t.Error("Dark error style should be bold")
	}
	if fg := errStyle.GetForeground(); fg != lipgloss.Color("#f7768e") {
		t.Errorf("Dark error style foreground: expected #f7768e, got %v", fg)
	}

	highlight := dark.Style(SemanticHighlight)
	if bg := highlight.GetBackground(); bg != lipgloss.Color("#283457") {
		t.Errorf("Dark highlight background: expected #283457, got %v", bg)
	}

	// The default theme uses adaptive light/dark colors
	adaptive := LoadTheme("default").Style(SemanticError).GetForeground()
	if _, ok := adaptive.(lipgloss.AdaptiveColor); !ok {
		t.Errorf("Default error foreground should be adaptive, got %T", adaptive)
	}
}

func TestPlainThemeRendersUnchanged(t *testing.T) {
	plain := LoadTheme("plain")

	for _, semantic := range []SemanticType{SemanticError, SemanticCommand, SemanticInfo} {
		style := plain.GetStyle(string(semantic))
		if got := style.Render("text"); got != "text" {
			t.Errorf("Plain theme %s: expected unchanged text, got %q", semantic, got)
		}
	}
}

func TestThemeUnknownSemantic(t *testing.T) {
	theme := LoadTheme("dark")

	style := theme.GetStyle("no-such-semantic")
	if style == nil {
		t.Fatal("GetStyle should never return nil")
	}
	if got := style.Render("text"); got != "text" {
		t.Errorf("Unknown semantic should render unchanged, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected lipgloss.TerminalColor
	}{
		{"plain string", "#ff0000", lipgloss.Color("#ff0000")},
		{"ansi number string", "196", lipgloss.Color("196")},
		{
			"light dark mapping",
			map[string]interface{}{"light": "160", "dark": "196"},
			lipgloss.AdaptiveColor{Light: "160", Dark: "196"},
		},
		{"mapping missing dark", map[string]interface{}{"light": "160"}, nil},
		{"unsupported type", 42, nil},
		{"nil value", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseColor(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBuildStyleDecorations(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	style := buildStyle(StyleConfig{
		Foreground: "#00ff00",
		Bold:       boolPtr(true),
		Underline:  boolPtr(true),
		Italic:     boolPtr(false),
	})

	if !style.GetBold() {
		t.Error("Expected bold to be set")
	}
	if !style.GetUnderline() {
		t.Error("Expected underline to be set")
	}
	if style.GetItalic() {
		t.Error("Italic false should not set the decoration")
	}
	if fg := style.GetForeground(); fg != lipgloss.Color("#00ff00") {
		t.Errorf("Expected foreground #00ff00, got %v", fg)
	}
}
