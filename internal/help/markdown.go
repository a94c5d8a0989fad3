package help

import (
	"fmt"
	"strings"

	"clamshell/pkg/clamtypes"
)

// Markdown converts a HelpInfo into the markdown document CommandHelp
// renders. The document stands on its own, so front-ends that bypass
// glamour can reuse it.
func Markdown(info clamtypes.HelpInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", info.Command)
	if info.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", info.Description)
	}
	if len(info.Aliases) > 0 {
		fmt.Fprintf(&b, "**Aliases:** %s\n\n", strings.Join(info.Aliases, ", "))
	}

	fmt.Fprintf(&b, "## Usage\n\n```\n%s\n```\n\n", info.Usage)

	if len(info.Options) > 0 {
		b.WriteString("## Options\n\n")
		for _, opt := range info.Options {
			b.WriteString(optionLine(opt))
		}
		b.WriteString("\n")
	}

	if len(info.Subcommands) > 0 {
		b.WriteString("## Subcommands\n\n")
		for _, sub := range info.Subcommands {
			fmt.Fprintf(&b, "- `%s`: %s\n", sub.Command, sub.Description)
		}
		b.WriteString("\n")
	}

	if len(info.Examples) > 0 {
		b.WriteString("## Examples\n\n")
		for _, example := range info.Examples {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", example.Command)
			if example.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", example.Description)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// optionLine renders one argument as a markdown bullet.
func optionLine(opt clamtypes.HelpOption) string {
	attrs := []string{opt.Type}
	if opt.Positional {
		attrs = append(attrs, "positional")
	}
	if opt.Required {
		attrs = append(attrs, "required")
	}
	for _, alias := range opt.Aliases {
		attrs = append(attrs, "alias "+alias)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- `%s` (%s)", opt.Name, strings.Join(attrs, ", "))
	if opt.Description != "" {
		fmt.Fprintf(&b, ": %s", opt.Description)
	}

	var tail []string
	if len(opt.Choices) > 0 {
		tail = append(tail, "one of "+strings.Join(opt.Choices, ", "))
	}
	if !opt.Required && opt.Default != "" {
		tail = append(tail, "default "+opt.Default)
	}
	if len(tail) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(tail, "; "))
	}

	b.WriteString("\n")
	return b.String()
}
