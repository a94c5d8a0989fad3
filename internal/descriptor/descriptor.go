// Package descriptor defines the declarative command model for clamshell.
// Applications describe commands as plain spec structs; Build validates a
// spec and freezes it into an immutable Command descriptor the registry,
// binder and completion engine all work from. Nothing here inspects Go
// function signatures: every fact about a command is stated explicitly.
package descriptor

import (
	"strings"

	"clamshell/pkg/clamtypes"
)

// ArgType enumerates the value types an argument can declare.
type ArgType int

const (
	// TypeAny accepts the parsed literal as is.
	TypeAny ArgType = iota
	// TypeString accepts any scalar and binds its textual form.
	TypeString
	// TypeInt accepts integer literals.
	TypeInt
	// TypeFloat accepts integer and float literals.
	TypeFloat
	// TypeBool accepts true/false literals.
	TypeBool
	// TypeStringList accepts a list of scalars, or a lone scalar lifted to a
	// one-element list.
	TypeStringList
	// TypeIntList accepts a list of integer literals, or a lone one.
	TypeIntList
	// TypeFloatList accepts a list of numeric literals, or a lone one.
	TypeFloatList
)

// String returns the help-surface notation for the type.
func (t ArgType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeStringList:
		return "[string]"
	case TypeIntList:
		return "[int]"
	case TypeFloatList:
		return "[float]"
	default:
		return "any"
	}
}

// IsList reports whether the type binds a list value.
func (t ArgType) IsList() bool {
	return t == TypeStringList || t == TypeIntList || t == TypeFloatList
}

// ArgSpec declares one argument of a command.
type ArgSpec struct {
	// Name is the argument identifier; it is canonicalised to kebab-case.
	Name string
	// Description is shown on the help surface.
	Description string
	// Type is the declared value type.
	Type ArgType
	// Aliases are alternate names accepted wherever Name is.
	Aliases []string
	// Positional allows the argument to be supplied without its name.
	Positional bool
	// Default makes the argument optional. A nil Default means required.
	Default any
	// Choices constrains the bound value (each element, for list types) to
	// this set, compared in canonical string form.
	Choices []string
	// Suggest, when set, supplies dynamic value completions for the prefix
	// the user has typed so far.
	Suggest func(prefix string) []string
}

// CommandSpec declares a leaf command.
type CommandSpec struct {
	// Name is the command identifier; it is canonicalised to kebab-case.
	Name string
	// Help is the one-line description shown in listings.
	Help string
	// Aliases are alternate names the registry resolves to this command.
	Aliases []string
	// Args declares the arguments in binding order.
	Args []ArgSpec
	// Handler executes the bound invocation.
	Handler clamtypes.Handler
	// Run selects how the dispatcher drives the handler.
	Run clamtypes.RunMode
	// Examples are shown on the detailed help surface.
	Examples []clamtypes.HelpExample
	// Hidden keeps the command out of listings and completion while still
	// resolvable by name.
	Hidden bool
}

// GroupSpec declares a command group: a named prefix whose subcommands share
// the group's optional arguments. Groups nest exactly one level deep.
type GroupSpec struct {
	Name        string
	Help        string
	Aliases     []string
	Args        []ArgSpec
	Subcommands []CommandSpec
}

// Argument is the frozen form of an ArgSpec with canonical names applied.
type Argument struct {
	Name        string
	Description string
	Type        ArgType
	Aliases     []string
	Positional  bool
	Required    bool
	Default     any
	Choices     []string
	Suggest     func(prefix string) []string
}

// Command is an immutable built descriptor. A Command with Subcommands is a
// group; its Handler is nil and its Args are inherited by every subcommand.
type Command struct {
	Name        string
	Aliases     []string
	Help        string
	Args        []*Argument
	Handler     clamtypes.Handler
	Run         clamtypes.RunMode
	Examples    []clamtypes.HelpExample
	Hidden      bool
	Subcommands []*Command
	Parent      *Command
}

// IsGroup reports whether the command is a group of subcommands.
func (c *Command) IsGroup() bool { return len(c.Subcommands) > 0 }

// Path returns the command path from the root descriptor to this one.
func (c *Command) Path() []string {
	if c.Parent == nil {
		return []string{c.Name}
	}
	return append(c.Parent.Path(), c.Name)
}

// Names returns the canonical name followed by the aliases.
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Subcommand looks up a direct subcommand by canonical name or alias.
func (c *Command) Subcommand(name string) (*Command, bool) {
	name = Canonical(name)
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub, true
		}
		for _, alias := range sub.Aliases {
			if alias == name {
				return sub, true
			}
		}
	}
	return nil, false
}

// BindableArgs returns the arguments an invocation of this command may bind:
// the parent group's shared arguments first, then the command's own, both in
// declaration order.
func (c *Command) BindableArgs() []*Argument {
	if c.Parent == nil {
		return c.Args
	}
	merged := make([]*Argument, 0, len(c.Parent.Args)+len(c.Args))
	merged = append(merged, c.Parent.Args...)
	return append(merged, c.Args...)
}

// Arg looks up a bindable argument by canonical name or alias.
func (c *Command) Arg(name string) (*Argument, bool) {
	name = Canonical(name)
	for _, arg := range c.BindableArgs() {
		if arg.Name == name {
			return arg, true
		}
		for _, alias := range arg.Aliases {
			if alias == name {
				return arg, true
			}
		}
	}
	return nil, false
}

// Build validates a leaf command spec and returns its frozen descriptor.
func Build(spec CommandSpec) (*Command, error) {
	name := Canonical(spec.Name)
	if name == "" {
		return nil, buildErr("", "", "command name is empty")
	}
	if spec.Handler == nil {
		return nil, buildErr(name, "", "command has no handler")
	}
	cmd := &Command{
		Name:     name,
		Help:     spec.Help,
		Handler:  spec.Handler,
		Run:      spec.Run,
		Examples: spec.Examples,
		Hidden:   spec.Hidden,
	}
	var err error
	if cmd.Aliases, err = buildAliases(name, spec.Aliases); err != nil {
		return nil, err
	}
	if cmd.Args, err = buildArgs(name, spec.Args, nil); err != nil {
		return nil, err
	}
	return cmd, nil
}

// BuildGroup validates a group spec and returns the frozen group descriptor
// with its subcommands attached.
func BuildGroup(spec GroupSpec) (*Command, error) {
	name := Canonical(spec.Name)
	if name == "" {
		return nil, buildErr("", "", "group name is empty")
	}
	if len(spec.Subcommands) == 0 {
		return nil, buildErr(name, "", "group has no subcommands")
	}
	group := &Command{
		Name: name,
		Help: spec.Help,
	}
	var err error
	if group.Aliases, err = buildAliases(name, spec.Aliases); err != nil {
		return nil, err
	}
	if group.Args, err = buildArgs(name, spec.Args, nil); err != nil {
		return nil, err
	}
	for _, arg := range group.Args {
		if arg.Required {
			return nil, buildErr(name, arg.Name, "group arguments must declare a default")
		}
		if arg.Positional {
			return nil, buildErr(name, arg.Name, "group arguments must be named, not positional")
		}
	}
	seen := map[string]string{}
	for _, subSpec := range spec.Subcommands {
		sub, err := Build(subSpec)
		if err != nil {
			return nil, err
		}
		for _, subName := range sub.Names() {
			if prev, taken := seen[subName]; taken {
				return nil, buildErr(name, "", "subcommand name %q already used by %q", subName, prev)
			}
			seen[subName] = sub.Name
		}
		combined := make([]*Argument, 0, len(group.Args)+len(sub.Args))
		combined = append(combined, group.Args...)
		combined = append(combined, sub.Args...)
		if _, err := buildArgs(name+" "+sub.Name, nil, combined); err != nil {
			return nil, err
		}
		sub.Parent = group
		group.Subcommands = append(group.Subcommands, sub)
	}
	return group, nil
}

// buildAliases canonicalises and de-duplicates a spec's alias list.
func buildAliases(command string, aliases []string) ([]string, error) {
	if len(aliases) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(aliases))
	seen := map[string]bool{command: true}
	for _, alias := range aliases {
		canon := Canonical(alias)
		if canon == "" {
			return nil, buildErr(command, "", "alias %q is empty after canonicalisation", alias)
		}
		if seen[canon] {
			return nil, buildErr(command, "", "duplicate alias %q", canon)
		}
		seen[canon] = true
		out = append(out, canon)
	}
	return out, nil
}

// buildArgs freezes and validates an argument list. When prebuilt is given it
// only re-checks name uniqueness across the combined set (used to verify a
// subcommand against its group's shared arguments).
func buildArgs(command string, specs []ArgSpec, prebuilt []*Argument) ([]*Argument, error) {
	args := prebuilt
	if args == nil {
		args = make([]*Argument, 0, len(specs))
		for _, spec := range specs {
			arg, err := buildArg(command, spec)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	taken := map[string]string{}
	optionalPositional := ""
	for _, arg := range args {
		for _, n := range append([]string{arg.Name}, arg.Aliases...) {
			if owner, dup := taken[n]; dup {
				return nil, buildErr(command, arg.Name, "name %q already used by argument %q", n, owner)
			}
			taken[n] = arg.Name
		}
		if arg.Positional {
			if arg.Required && optionalPositional != "" {
				return nil, buildErr(command, arg.Name,
					"required positional argument follows optional positional %q", optionalPositional)
			}
			if !arg.Required {
				optionalPositional = arg.Name
			}
		}
	}
	return args, nil
}

// buildArg freezes and validates a single argument spec.
func buildArg(command string, spec ArgSpec) (*Argument, error) {
	name := Canonical(spec.Name)
	if name == "" {
		return nil, buildErr(command, spec.Name, "argument name is empty")
	}
	if spec.Type < TypeAny || spec.Type > TypeFloatList {
		return nil, buildErr(command, name, "unknown argument type %d", spec.Type)
	}
	if !spec.Positional && strings.TrimSpace(spec.Description) == "" {
		return nil, buildErr(command, name, "named argument requires a description")
	}
	arg := &Argument{
		Name:        name,
		Description: spec.Description,
		Type:        spec.Type,
		Positional:  spec.Positional,
		Required:    spec.Default == nil,
		Choices:     spec.Choices,
		Suggest:     spec.Suggest,
	}
	for _, alias := range spec.Aliases {
		canon := Canonical(alias)
		if canon == "" {
			return nil, buildErr(command, name, "alias %q is empty after canonicalisation", alias)
		}
		arg.Aliases = append(arg.Aliases, canon)
	}
	if len(spec.Choices) > 0 && spec.Type == TypeAny {
		return nil, buildErr(command, name, "choices require a concrete argument type")
	}
	if spec.Default != nil {
		normalized, err := normalizeDefault(command, name, spec.Type, spec.Default)
		if err != nil {
			return nil, err
		}
		arg.Default = normalized
		if len(arg.Choices) > 0 {
			if err := defaultInChoices(command, name, normalized, arg.Choices); err != nil {
				return nil, err
			}
		}
	}
	return arg, nil
}

// normalizeDefault checks a default value against the declared type,
// promoting ints to floats where the type allows it.
func normalizeDefault(command, name string, t ArgType, def any) (any, error) {
	mismatch := func() (any, error) {
		return nil, buildErr(command, name, "default %v does not satisfy declared type %s", def, t)
	}
	switch t {
	case TypeAny:
		return def, nil
	case TypeString:
		if v, ok := def.(string); ok {
			return v, nil
		}
	case TypeInt:
		if v, ok := def.(int); ok {
			return v, nil
		}
	case TypeFloat:
		switch v := def.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case TypeBool:
		if v, ok := def.(bool); ok {
			return v, nil
		}
	case TypeStringList:
		if v, ok := def.([]string); ok {
			return v, nil
		}
	case TypeIntList:
		if v, ok := def.([]int); ok {
			return v, nil
		}
	case TypeFloatList:
		if v, ok := def.([]float64); ok {
			return v, nil
		}
	}
	return mismatch()
}

// defaultInChoices verifies an optional argument's default against its
// choice set, element-wise for lists.
func defaultInChoices(command, name string, def any, choices []string) error {
	in := func(s string) bool {
		for _, c := range choices {
			if c == s {
				return true
			}
		}
		return false
	}
	for _, rendered := range FormatElements(def) {
		if !in(rendered) {
			return buildErr(command, name, "default %v is not one of the declared choices", def)
		}
	}
	return nil
}
