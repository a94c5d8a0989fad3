// Package registry keeps the set of registered command descriptors and
// resolves input tokens to them. Resolution is exact on command names and
// aliases; near misses surface as suggestions on the returned error.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"clamshell/internal/descriptor"
)

// Registry is a thread-safe descriptor store. Commands register once and
// stay; listing preserves registration order so help output is stable.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*descriptor.Command
	aliases  map[string]string
	order    []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]*descriptor.Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a built descriptor. Every name the command answers to (its
// canonical name and all aliases) must be free across the whole registry;
// on collision the registry is unchanged and a DuplicateNameError names the
// current owner. Registration is allowed at any time, including after the
// interactive loop has started.
func (r *Registry) Register(cmd *descriptor.Command) error {
	if cmd == nil {
		return fmt.Errorf("cannot register nil command")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range cmd.Names() {
		if owner, taken := r.owner(name); taken {
			return &DuplicateNameError{Name: name, Existing: owner}
		}
	}
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd.Name
	}
	r.order = append(r.order, cmd.Name)
	return nil
}

// owner returns the canonical command name a name or alias currently maps
// to. Callers must hold the lock.
func (r *Registry) owner(name string) (string, bool) {
	if _, ok := r.commands[name]; ok {
		return name, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical, true
	}
	return "", false
}

// Lookup finds a root command by exact name or alias.
func (r *Registry) Lookup(name string) (*descriptor.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cmd, ok := r.commands[name]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Resolution is the result of resolving input tokens: the descriptor the
// leading tokens named (a leaf or a group), the matched path, and the tokens
// left over for argument binding.
type Resolution struct {
	Command *descriptor.Command
	Path    []string
	Rest    []string
}

// Resolve walks the leading tokens through the registry. The first token
// must name a root command; when it names a group and the second token is a
// bare word, that word must name one of its subcommands. Named-argument
// tokens never consume a subcommand position.
func (r *Registry) Resolve(tokens []string) (*Resolution, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no command given")
	}
	cmd, ok := r.Lookup(tokens[0])
	if !ok {
		return nil, &UnknownCommandError{Name: tokens[0], Suggestions: r.SuggestFor(tokens[0])}
	}
	res := &Resolution{Command: cmd, Path: []string{cmd.Name}, Rest: tokens[1:]}
	if !cmd.IsGroup() || len(tokens) < 2 || !bareWord(tokens[1]) {
		return res, nil
	}
	sub, ok := cmd.Subcommand(tokens[1])
	if !ok {
		return nil, &UnknownCommandError{
			Name:        tokens[1],
			Parent:      cmd.Name,
			Suggestions: suggest(tokens[1], subcommandNames(cmd)),
		}
	}
	res.Command = sub
	res.Path = append(res.Path, sub.Name)
	res.Rest = tokens[2:]
	return res, nil
}

// bareWord reports whether a token can occupy a subcommand position: not a
// flag and not a name=value assignment.
func bareWord(token string) bool {
	return !strings.HasPrefix(token, "-") && !strings.Contains(token, "=")
}

// Commands returns the registered descriptors in registration order.
func (r *Registry) Commands() []*descriptor.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*descriptor.Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Names returns the canonical command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// VisibleNames returns every name and alias a completion may propose,
// sorted lexicographically. Hidden commands are excluded.
func (r *Registry) VisibleNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, name := range r.order {
		cmd := r.commands[name]
		if cmd.Hidden {
			continue
		}
		out = append(out, cmd.Names()...)
	}
	sort.Strings(out)
	return out
}

func subcommandNames(group *descriptor.Command) []string {
	var out []string
	for _, sub := range group.Subcommands {
		out = append(out, sub.Names()...)
	}
	return out
}
