package binder

import (
	"fmt"
	"strings"

	"clamshell/internal/descriptor"
)

// UnknownArgumentError reports a named token that matches no argument of the
// resolved command.
type UnknownArgumentError struct {
	Command     string
	Name        string
	Suggestions []string
}

// Error implements the error interface.
func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q for command %q", e.Name, e.Command)
}

// AmbiguousArgumentError reports an argument supplied more than once, by any
// mix of name, alias and positional spellings.
type AmbiguousArgumentError struct {
	Command string
	Name    string
}

// Error implements the error interface.
func (e *AmbiguousArgumentError) Error() string {
	return fmt.Sprintf("argument %q of command %q was supplied more than once", e.Name, e.Command)
}

// ExtraArgumentsError reports positional tokens left over once every
// positional argument is filled.
type ExtraArgumentsError struct {
	Command string
	Tokens  []string
}

// Error implements the error interface.
func (e *ExtraArgumentsError) Error() string {
	return fmt.Sprintf("too many positional arguments for command %q: %s",
		e.Command, strings.Join(e.Tokens, " "))
}

// MissingArgumentError reports every required argument the input failed to
// supply.
type MissingArgumentError struct {
	Command string
	Missing []string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required arguments for command %q: %s",
		e.Command, strings.Join(e.Missing, ", "))
}

// CoercionError reports a value that does not satisfy its argument's
// declared type.
type CoercionError struct {
	Command  string
	Argument string
	Value    string
	Want     descriptor.ArgType
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot convert value %q to %s for argument %q",
		e.Value, e.Want, e.Argument)
}

// ChoiceError reports a value outside its argument's declared choice set.
type ChoiceError struct {
	Command  string
	Argument string
	Value    string
	Choices  []string
}

// Error implements the error interface.
func (e *ChoiceError) Error() string {
	return fmt.Sprintf("value %q of argument %q must be one of: %s",
		e.Value, e.Argument, strings.Join(e.Choices, ", "))
}
