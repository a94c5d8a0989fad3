// Package binder matches raw argument tokens against a resolved command
// descriptor and produces the typed value map a handler receives. Binding is
// fail-fast with a fixed precedence: surplus positionals, duplicates,
// unknown names, missing required arguments, type coercion, then choice
// validation.
package binder

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"clamshell/internal/descriptor"
	"clamshell/internal/parser"
	"clamshell/pkg/clamtypes"
)

// assignment is one argument value gathered from the token walk, before any
// validation ran. A trailing list positional may gather several raw tokens;
// everything else carries exactly one.
type assignment struct {
	name      string   // name as typed; empty for positional assignments
	canonical string   // canonical argument name; empty when the name is unknown
	raws      []string // raw value texts
}

// Bind binds tokens to a resolved leaf command. When the command belongs to
// a group, the group's shared arguments are bindable alongside the leaf's
// own and land in the same flat map. Tokens may use name=value, --name value
// and --name=value spellings interchangeably; a bare --name on a bool
// argument binds true.
func Bind(cmd *descriptor.Command, tokens []string) (clamtypes.Args, error) {
	command := strings.Join(cmd.Path(), " ")
	bindable := cmd.BindableArgs()

	var named []assignment
	var positionals []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			// A bare -- ends named parsing: the rest binds positionally,
			// whatever it looks like.
			positionals = append(positionals, tokens[i+1:]...)
			break
		}
		if strings.HasPrefix(tok, "-") {
			stripped := strings.TrimLeft(tok, "-")
			if name, value, ok := parser.SplitAssign(stripped); ok {
				named = append(named, makeAssignment(cmd, name, value))
				continue
			}
			if parser.IsIdent(stripped) {
				named = append(named, flagAssignment(cmd, stripped, tokens, &i))
				continue
			}
			// not a flag after all (e.g. a negative number)
		}
		if name, value, ok := parser.SplitAssign(tok); ok {
			named = append(named, makeAssignment(cmd, name, value))
			continue
		}
		positionals = append(positionals, tok)
	}

	var posArgs []*descriptor.Argument
	for _, arg := range bindable {
		if arg.Positional {
			posArgs = append(posArgs, arg)
		}
	}
	// A trailing list-typed positional absorbs every surplus token, so
	// `lookup-hosts a.com b.com` binds hosts=[a.com, b.com].
	trailingList := len(posArgs) > 0 && posArgs[len(posArgs)-1].Type.IsList()
	if len(positionals) > len(posArgs) && !trailingList {
		return nil, &ExtraArgumentsError{Command: command, Tokens: positionals[len(posArgs):]}
	}

	assignments := make([]assignment, 0, len(named)+len(posArgs))
	for i, arg := range posArgs {
		if i >= len(positionals) {
			break
		}
		raws := positionals[i : i+1]
		if i == len(posArgs)-1 {
			raws = positionals[i:]
		}
		assignments = append(assignments, assignment{canonical: arg.Name, raws: raws})
	}
	assignments = append(assignments, named...)

	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if a.canonical == "" {
			continue
		}
		if seen[a.canonical] {
			return nil, &AmbiguousArgumentError{Command: command, Name: a.canonical}
		}
		seen[a.canonical] = true
	}
	for _, a := range named {
		if a.canonical == "" {
			return nil, &UnknownArgumentError{
				Command:     command,
				Name:        a.name,
				Suggestions: suggestArgs(a.name, bindable),
			}
		}
	}

	var missing []string
	for _, arg := range bindable {
		if arg.Required && !seen[arg.Name] {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingArgumentError{Command: command, Missing: missing}
	}

	rawByName := make(map[string][]string, len(assignments))
	for _, a := range assignments {
		rawByName[a.canonical] = a.raws
	}
	values := make(clamtypes.Args, len(bindable))
	for _, arg := range bindable {
		raws, supplied := rawByName[arg.Name]
		if !supplied {
			if !arg.Required {
				values[arg.Name] = copyDefault(arg.Default)
			}
			continue
		}
		val, err := coerce(command, arg, raws)
		if err != nil {
			return nil, err
		}
		if len(arg.Choices) > 0 {
			if err := checkChoices(command, arg, val); err != nil {
				return nil, err
			}
		}
		values[arg.Name] = val
	}
	return values, nil
}

// makeAssignment resolves a name=value pair against the command's bindable
// arguments, leaving canonical empty for unknown names.
func makeAssignment(cmd *descriptor.Command, name, value string) assignment {
	a := assignment{name: name, raws: []string{value}}
	if arg, ok := cmd.Arg(name); ok {
		a.canonical = arg.Name
	}
	return a
}

// flagAssignment handles the --name spelling. Bool arguments never consume a
// value token; other known arguments always claim the next token when one
// exists. For unknown names the next token is claimed only when it cannot be
// anything but a value, which keeps the error report stable.
func flagAssignment(cmd *descriptor.Command, name string, tokens []string, i *int) assignment {
	a := assignment{name: name}
	arg, known := cmd.Arg(name)
	if known {
		a.canonical = arg.Name
		if arg.Type == descriptor.TypeBool {
			a.raws = []string{"true"}
			return a
		}
	}
	if *i+1 < len(tokens) && (known || looksLikeValue(tokens[*i+1])) {
		*i++
		a.raws = []string{tokens[*i]}
	}
	return a
}

func looksLikeValue(tok string) bool {
	if _, _, ok := parser.SplitAssign(tok); ok {
		return false
	}
	if strings.HasPrefix(tok, "-") && parser.IsIdent(strings.TrimLeft(tok, "-")) {
		return false
	}
	return true
}

// coerce parses the raw token(s) of one argument and converts them to the
// declared type. Scalars lift to one-element lists for list types; nested
// lists never flatten. Multiple raws only occur for a trailing list
// positional, where each token contributes its value (or, for a list
// literal, its elements).
func coerce(command string, arg *descriptor.Argument, raws []string) (any, error) {
	fail := func() (any, error) {
		return nil, &CoercionError{Command: command, Argument: arg.Name, Value: strings.Join(raws, " "), Want: arg.Type}
	}
	var val any
	switch len(raws) {
	case 0:
		val = ""
	case 1:
		val = parser.ParseValue(raws[0])
	default:
		elems := make([]any, 0, len(raws))
		for _, raw := range raws {
			v := parser.ParseValue(raw)
			if nested, ok := v.([]any); ok {
				elems = append(elems, nested...)
			} else {
				elems = append(elems, v)
			}
		}
		val = elems
	}
	switch arg.Type {
	case descriptor.TypeAny:
		return val, nil
	case descriptor.TypeString, descriptor.TypeInt, descriptor.TypeFloat, descriptor.TypeBool:
		out, ok := coerceScalar(arg.Type, val)
		if !ok {
			return fail()
		}
		return out, nil
	case descriptor.TypeStringList:
		elems, isList := val.([]any)
		if !isList {
			elems = []any{val}
		}
		out := make([]string, 0, len(elems))
		for _, e := range elems {
			v, ok := coerceScalar(descriptor.TypeString, e)
			if !ok {
				return fail()
			}
			out = append(out, v.(string))
		}
		return out, nil
	case descriptor.TypeIntList:
		elems, isList := val.([]any)
		if !isList {
			elems = []any{val}
		}
		out := make([]int, 0, len(elems))
		for _, e := range elems {
			v, ok := coerceScalar(descriptor.TypeInt, e)
			if !ok {
				return fail()
			}
			out = append(out, v.(int))
		}
		return out, nil
	case descriptor.TypeFloatList:
		elems, isList := val.([]any)
		if !isList {
			elems = []any{val}
		}
		out := make([]float64, 0, len(elems))
		for _, e := range elems {
			v, ok := coerceScalar(descriptor.TypeFloat, e)
			if !ok {
				return fail()
			}
			out = append(out, v.(float64))
		}
		return out, nil
	}
	return fail()
}

// coerceScalar converts one parsed literal to a scalar target type. String
// targets accept any scalar and render it in canonical form; numeric and
// bool targets are strict, except that ints promote to floats.
func coerceScalar(t descriptor.ArgType, v any) (any, bool) {
	if _, isList := v.([]any); isList {
		return nil, false
	}
	switch t {
	case descriptor.TypeString:
		if s, ok := v.(string); ok {
			return s, true
		}
		return descriptor.FormatValue(v), true
	case descriptor.TypeInt:
		n, ok := v.(int)
		if !ok {
			return nil, false
		}
		return n, true
	case descriptor.TypeFloat:
		switch x := v.(type) {
		case float64:
			return x, true
		case int:
			return float64(x), true
		}
		return nil, false
	case descriptor.TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, false
		}
		return b, true
	}
	return nil, false
}

// checkChoices validates a bound value, element-wise for lists, against the
// argument's declared choice set.
func checkChoices(command string, arg *descriptor.Argument, val any) error {
	for _, rendered := range descriptor.FormatElements(val) {
		ok := false
		for _, choice := range arg.Choices {
			if choice == rendered {
				ok = true
				break
			}
		}
		if !ok {
			return &ChoiceError{
				Command:  command,
				Argument: arg.Name,
				Value:    rendered,
				Choices:  append([]string(nil), arg.Choices...),
			}
		}
	}
	return nil
}

// copyDefault hands each invocation its own copy of list defaults so a
// handler mutating its arguments cannot leak into later invocations. Empty
// lists stay non-nil, matching what the caller declared.
func copyDefault(def any) any {
	switch v := def.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out
	default:
		return def
	}
}

// suggestArgs lists argument names within edit distance 2 of an unknown
// name, in declaration order.
func suggestArgs(name string, args []*descriptor.Argument) []string {
	var out []string
	for _, arg := range args {
		for _, candidate := range append([]string{arg.Name}, arg.Aliases...) {
			if levenshtein.ComputeDistance(name, candidate) <= 2 {
				out = append(out, candidate)
			}
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
