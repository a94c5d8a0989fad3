package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"clamshell/pkg/clamtypes"
)

// FormatValue renders a bound or default value in its canonical string form,
// the form choice sets are compared against.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []string:
		return "[" + strings.Join(t, ", ") + "]"
	case []int:
		parts := make([]string, len(t))
		for i, n := range t {
			parts[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []float64:
		parts := make([]string, len(t))
		for i, f := range t {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// FormatElements renders a value element-wise: lists yield one string per
// element, scalars yield a single-element slice. Choice validation compares
// these forms.
func FormatElements(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []int:
		out := make([]string, len(t))
		for i, n := range t {
			out[i] = strconv.Itoa(n)
		}
		return out
	case []float64:
		out := make([]string, len(t))
		for i, f := range t {
			out[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, FormatElements(e)...)
		}
		return out
	default:
		return []string{FormatValue(v)}
	}
}

// Usage renders the one-line usage syntax for the command.
func (c *Command) Usage() string {
	parts := []string{strings.Join(c.Path(), " ")}
	for _, arg := range c.Args {
		parts = append(parts, argUsage(arg))
	}
	if c.IsGroup() {
		parts = append(parts, "<subcommand> ...")
	}
	return strings.Join(parts, " ")
}

func argUsage(arg *Argument) string {
	var form string
	if arg.Positional {
		form = "<" + arg.Name + ">"
	} else {
		form = arg.Name + "=<" + arg.Type.String() + ">"
	}
	if !arg.Required {
		form = "[" + form + "]"
	}
	return form
}

// HelpInfo builds the structured help surface for the command, including
// subcommand entries for groups.
func (c *Command) HelpInfo() clamtypes.HelpInfo {
	info := clamtypes.HelpInfo{
		Command:     strings.Join(c.Path(), " "),
		Aliases:     append([]string(nil), c.Aliases...),
		Description: c.Help,
		Usage:       c.Usage(),
		Examples:    append([]clamtypes.HelpExample(nil), c.Examples...),
	}
	for _, arg := range c.BindableArgs() {
		opt := clamtypes.HelpOption{
			Name:        arg.Name,
			Aliases:     append([]string(nil), arg.Aliases...),
			Description: arg.Description,
			Type:        arg.Type.String(),
			Required:    arg.Required,
			Positional:  arg.Positional,
			Choices:     append([]string(nil), arg.Choices...),
		}
		if !arg.Required {
			opt.Default = FormatValue(arg.Default)
		}
		info.Options = append(info.Options, opt)
	}
	for _, sub := range c.Subcommands {
		info.Subcommands = append(info.Subcommands, sub.HelpInfo())
	}
	return info
}
