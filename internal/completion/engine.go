// Package completion turns a buffer and cursor position into ordered
// completion candidates plus the span of text they replace. The engine only
// proposes tokens that keep the line resolvable: command names from the
// registry, argument names from the resolved descriptor, and values from an
// argument's declared choice or suggestion set.
package completion

import (
	"strings"

	"clamshell/internal/descriptor"
	"clamshell/internal/parser"
	"clamshell/internal/registry"
)

// Result is one completion response. Candidates replace the buffer range
// [Start, End); Start == End means a fresh token opens at the cursor.
// Candidates are ordered: lexicographic for command names, declaration order
// for arguments and values.
type Result struct {
	Candidates []string
	Start      int
	End        int
}

// Engine answers completion requests against a registry. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	reg *registry.Registry
}

// NewEngine creates a completion engine over reg.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// Complete computes candidates for the token under the cursor. Text right of
// the cursor is ignored. The call never fails; a buffer the lexer cannot
// make sense of yields an empty candidate list.
func (e *Engine) Complete(buffer string, cursor int) Result {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(buffer) {
		cursor = len(buffer)
	}
	tokens := parser.LexPrefix(buffer[:cursor])

	cur := parser.Token{Start: cursor, End: cursor}
	index := len(tokens)
	if index > 0 && tokens[index-1].End == cursor {
		index--
		cur = tokens[index]
	}
	res := Result{Start: cur.Start, End: cursor}

	if index == 0 {
		res.Candidates = filterPrefix(e.reg.VisibleNames(), cur.Text)
		return res
	}

	cmd, ok := e.reg.Lookup(tokens[0].Text)
	if !ok {
		return res
	}
	argStart := 1
	if cmd.IsGroup() {
		if index == 1 {
			res.Candidates = filterPrefix(visibleSubcommands(cmd), cur.Text)
			return res
		}
		sub, ok := cmd.Subcommand(tokens[1].Text)
		if !ok {
			return res
		}
		cmd = sub
		argStart = 2
	}

	prior := parser.Texts(tokens[argStart:index])
	bound := boundNames(cmd, prior)
	res.Candidates = e.argumentCandidates(cmd, cur.Text, prior, bound)
	return res
}

// argumentCandidates completes one token inside a resolved command's
// argument region.
func (e *Engine) argumentCandidates(cmd *descriptor.Command, text string, prior []string, bound map[string]bool) []string {
	// value position of a name=value token, including inside an open bracket
	if name, partial, ok := splitAssignment(text); ok {
		arg, found := cmd.Arg(name)
		if !found {
			return nil
		}
		return assignmentValueCandidates(arg, text, partial)
	}

	// flag spelling
	if strings.HasPrefix(text, "-") {
		return filterPrefix(flagForms(cmd, bound), text)
	}

	// value position after a standalone --name token
	if arg, ok := pendingFlagValue(cmd, prior); ok {
		return filterPrefix(valueCandidates(arg, text), text)
	}

	// bare word: name= templates for arguments not yet on the line
	var out []string
	for _, arg := range cmd.BindableArgs() {
		if !bound[arg.Name] {
			out = append(out, arg.Name+"=")
		}
	}
	return filterPrefix(out, text)
}

// splitAssignment recognises name=partial tokens, tolerating a flag prefix.
func splitAssignment(text string) (name, partial string, ok bool) {
	return parser.SplitAssign(strings.TrimLeft(text, "-"))
}

// assignmentValueCandidates completes the value side of a name=partial
// token. Candidates carry the full token text so they replace the span
// cleanly; inside an open list literal only the element after the last
// bracket or comma is completed.
func assignmentValueCandidates(arg *descriptor.Argument, text, partial string) []string {
	elemPrefix := partial
	if parser.OpenBracket(partial) {
		cut := strings.LastIndexAny(partial, "[,")
		elemPrefix = strings.TrimLeft(partial[cut+1:], " ")
	} else if strings.HasPrefix(partial, "[") {
		return nil // closed list, nothing left to complete
	}
	base := text[:len(text)-len(elemPrefix)]
	var out []string
	for _, value := range filterPrefix(valueCandidates(arg, elemPrefix), elemPrefix) {
		out = append(out, base+value)
	}
	return out
}

// pendingFlagValue reports the argument whose value the cursor's token
// supplies because the previous token was its --name flag.
func pendingFlagValue(cmd *descriptor.Command, prior []string) (*descriptor.Argument, bool) {
	if len(prior) == 0 {
		return nil, false
	}
	last := prior[len(prior)-1]
	if !strings.HasPrefix(last, "-") {
		return nil, false
	}
	name := strings.TrimLeft(last, "-")
	if !parser.IsIdent(name) {
		return nil, false
	}
	arg, ok := cmd.Arg(name)
	if !ok || arg.Type == descriptor.TypeBool {
		return nil, false
	}
	return arg, true
}

// flagForms renders the --name spellings for arguments not yet bound.
func flagForms(cmd *descriptor.Command, bound map[string]bool) []string {
	var out []string
	for _, arg := range cmd.BindableArgs() {
		if bound[arg.Name] {
			continue
		}
		out = append(out, "--"+arg.Name)
		for _, alias := range arg.Aliases {
			if len(alias) == 1 {
				out = append(out, "-"+alias)
			} else {
				out = append(out, "--"+alias)
			}
		}
	}
	return out
}

// valueCandidates lists the completable values of an argument: its choice
// set when declared, else its dynamic suggestions.
func valueCandidates(arg *descriptor.Argument, partial string) []string {
	if len(arg.Choices) > 0 {
		return arg.Choices
	}
	if arg.Suggest != nil {
		return arg.Suggest(partial)
	}
	return nil
}

// boundNames marks the canonical argument names the tokens before the
// cursor already supply, so completed flags and templates stay fresh.
func boundNames(cmd *descriptor.Command, tokens []string) map[string]bool {
	bound := make(map[string]bool)
	positionals := 0
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if strings.HasPrefix(tok, "-") {
			stripped := strings.TrimLeft(tok, "-")
			if name, _, ok := parser.SplitAssign(stripped); ok {
				markBound(cmd, name, bound)
				continue
			}
			if parser.IsIdent(stripped) {
				if arg, ok := cmd.Arg(stripped); ok {
					bound[arg.Name] = true
					if arg.Type != descriptor.TypeBool && i+1 < len(tokens) {
						i++
					}
				}
				continue
			}
		}
		if name, _, ok := parser.SplitAssign(tok); ok {
			markBound(cmd, name, bound)
			continue
		}
		positionals++
	}
	for _, arg := range cmd.BindableArgs() {
		if arg.Positional && positionals > 0 {
			bound[arg.Name] = true
			positionals--
		}
	}
	return bound
}

func markBound(cmd *descriptor.Command, name string, bound map[string]bool) {
	if arg, ok := cmd.Arg(name); ok {
		bound[arg.Name] = true
	}
}

// visibleSubcommands lists a group's subcommand names and aliases in
// declaration order, skipping hidden entries.
func visibleSubcommands(group *descriptor.Command) []string {
	var out []string
	for _, sub := range group.Subcommands {
		if sub.Hidden {
			continue
		}
		out = append(out, sub.Names()...)
	}
	return out
}

// filterPrefix keeps candidates matching the typed prefix, comparing
// case-insensitively. An empty prefix keeps everything.
func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	lower := strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	return out
}
