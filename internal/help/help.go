// Package help renders command help surfaces: the aligned command listing
// shown by a bare help call and per-command usage pages rendered from
// HelpInfo as markdown through glamour.
package help

import (
	"fmt"
	"strings"

	"clamshell/internal/descriptor"
	"clamshell/internal/output"
	"clamshell/internal/registry"

	"github.com/charmbracelet/glamour"
)

const defaultWrapWidth = 80

// Renderer renders help text with the active theme.
type Renderer struct {
	styles output.StyleProvider
	width  int
}

// NewRenderer creates a Renderer using the given style provider. A nil
// provider renders everything unstyled.
func NewRenderer(styles output.StyleProvider) *Renderer {
	return &Renderer{styles: styles, width: defaultWrapWidth}
}

// SetWidth changes the wrap width for rendered markdown pages.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// CommandTable renders the two-column command listing: every visible root
// command with its aliases and one-line description, in registration order.
func (r *Renderer) CommandTable(reg *registry.Registry) string {
	type row struct {
		label       string
		description string
	}

	var rows []row
	width := 0
	for _, cmd := range reg.Commands() {
		if cmd.Hidden {
			continue
		}
		label := cmd.Name
		if len(cmd.Aliases) > 0 {
			label = fmt.Sprintf("%s (%s)", cmd.Name, strings.Join(cmd.Aliases, ", "))
		}
		if len(label) > width {
			width = len(label)
		}
		rows = append(rows, row{label: label, description: cmd.Help})
	}

	if len(rows) == 0 {
		return "No commands registered.\n"
	}

	commandStyle := r.style(output.SemanticCommand)
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, row := range rows {
		// Pad before styling so escape sequences never shift columns.
		pad := strings.Repeat(" ", width-len(row.label))
		fmt.Fprintf(&b, "  %s%s  %s\n", commandStyle.Render(row.label), pad, row.description)
	}
	return b.String()
}

// CommandHelp renders the full usage page for one resolved command.
func (r *Renderer) CommandHelp(cmd *descriptor.Command) (string, error) {
	return r.Render(Markdown(cmd.HelpInfo()))
}

// Render renders markdown to terminal output using a glamour style matched
// to the active theme.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	renderer, err := r.newTermRenderer()
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// newTermRenderer builds a glamour renderer for the provider's theme type,
// falling back to auto-detection when the themed renderer cannot be built.
func (r *Renderer) newTermRenderer() (*glamour.TermRenderer, error) {
	style := "auto"
	if r.styles != nil && r.styles.IsAvailable() {
		style = glamourStyle(r.styles.GetThemeType())
	}

	if style != "auto" {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(r.width),
		)
		if err == nil {
			return renderer, nil
		}
	}

	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
}

// style resolves one semantic style, falling back to unstyled text.
func (r *Renderer) style(semantic output.SemanticType) output.TextStyle {
	if r.styles != nil && r.styles.IsAvailable() {
		return r.styles.GetStyle(string(semantic))
	}
	return output.NewPlainTextStyle("")
}

// glamourStyle maps a StyleProvider theme type to glamour's standard style names.
func glamourStyle(themeType string) string {
	switch strings.ToLower(themeType) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	case "notty":
		return "notty"
	default:
		return "auto"
	}
}
