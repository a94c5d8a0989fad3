package descriptor

import (
	"strings"
	"unicode"
)

// Canonical folds a command or argument identifier into its canonical
// kebab-case form: camel-case boundaries become dashes, underscores and
// spaces become dashes, and everything is lowercased. The fold is
// idempotent, so an explicitly kebab-cased name passes through unchanged
// and acts as its own override.
//
// fooBar, foo_bar, FooBar and foo-bar all canonicalise to foo-bar.
func Canonical(name string) string {
	runes := []rune(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		switch {
		case r == '_' || r == ' ' || r == '-':
			b.WriteRune('-')
		case unicode.IsUpper(r):
			if i > 0 && boundaryBefore(runes, i) {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// boundaryBefore reports whether a dash belongs before the uppercase rune at
// i. That is the case after a lowercase or digit (fooBar), and at the end of
// an acronym run when the next rune is lowercase (HTTPServer -> http-server).
func boundaryBefore(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
