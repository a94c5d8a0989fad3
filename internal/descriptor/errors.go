package descriptor

import "fmt"

// BuildError reports an invalid command or argument specification. Building
// stops at the first violation so the message always names a single cause.
type BuildError struct {
	Command string // canonical command name, when known
	Arg     string // canonical argument name, when the fault is argument level
	Reason  string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch {
	case e.Command == "" && e.Arg == "":
		return fmt.Sprintf("invalid command spec: %s", e.Reason)
	case e.Arg == "":
		return fmt.Sprintf("invalid command %q: %s", e.Command, e.Reason)
	default:
		return fmt.Sprintf("invalid argument %q of command %q: %s", e.Arg, e.Command, e.Reason)
	}
}

func buildErr(command, arg, format string, args ...any) *BuildError {
	return &BuildError{Command: command, Arg: arg, Reason: fmt.Sprintf(format, args...)}
}
