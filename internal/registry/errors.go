package registry

import "fmt"

// DuplicateNameError reports a registration whose name or alias is already
// taken. The registry is left unchanged when it is returned.
type DuplicateNameError struct {
	Name     string // the colliding name
	Existing string // canonical name of the command that owns it
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command name %q is already registered to %q", e.Name, e.Existing)
}

// UnknownCommandError reports a failed resolution. Suggestions carries near
// misses for a mistyped name, or the valid subcommands when a group was
// reached without one.
type UnknownCommandError struct {
	Name        string   // the token that failed to resolve; empty when a group got no subcommand
	Parent      string   // group name when resolution failed below the root
	Suggestions []string // near misses or valid subcommands
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	switch {
	case e.Name == "" && e.Parent != "":
		return fmt.Sprintf("command %q requires a subcommand", e.Parent)
	case e.Parent != "":
		return fmt.Sprintf("unknown subcommand %q of %q", e.Name, e.Parent)
	default:
		return fmt.Sprintf("unknown command %q", e.Name)
	}
}
