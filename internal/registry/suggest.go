package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still considered a near
// miss, and maxSuggestions caps how many near misses are reported.
const (
	maxSuggestDistance = 2
	maxSuggestions     = 3
)

// SuggestFor returns registered names within edit distance 2 of a mistyped
// command name, nearest first, ties in registration order. Hidden commands
// never appear.
func (r *Registry) SuggestFor(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pool []string
	for _, canonical := range r.order {
		cmd := r.commands[canonical]
		if cmd.Hidden {
			continue
		}
		pool = append(pool, cmd.Names()...)
	}
	return suggest(name, pool)
}

// suggest ranks pool entries by edit distance to name, keeping those within
// maxSuggestDistance. Pool order breaks ties, so earlier registrations win.
func suggest(name string, pool []string) []string {
	type scored struct {
		name     string
		distance int
		index    int
	}
	var hits []scored
	for i, candidate := range pool {
		d := levenshtein.ComputeDistance(name, candidate)
		if d <= maxSuggestDistance {
			hits = append(hits, scored{name: candidate, distance: d, index: i})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}
		return hits[i].index < hits[j].index
	})
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// FormatSuggestions renders a near-miss list as the interactive hint
// appended to unknown-command messages. It returns "" for an empty list.
func FormatSuggestions(suggestions []string) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Did you mean %q?", suggestions[0])
	default:
		quoted := make([]string, len(suggestions))
		for i, s := range suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("Did you mean %s or %s?",
			strings.Join(quoted[:len(quoted)-1], ", "), quoted[len(quoted)-1])
	}
}
