package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	intRe   = regexp.MustCompile(`^-?\d+$`)
	floatRe = regexp.MustCompile(`^-?\d+\.\d*([eE][+-]?\d+)?$`)
)

// SplitAssign splits a name=value token. It reports ok only when the text
// left of the first top-level '=' is a bare identifier, so quoted tokens and
// list literals containing '=' stay positional values.
func SplitAssign(text string) (name, value string, ok bool) {
	eq := strings.IndexByte(text, '=')
	if eq <= 0 {
		return "", "", false
	}
	name = text[:eq]
	if !identRe.MatchString(name) {
		return "", "", false
	}
	return name, text[eq+1:], true
}

// FlagName strips the dash prefix of a --name or -n token and returns the
// bare name. Negative numbers are not flags.
func FlagName(text string) (string, bool) {
	if !strings.HasPrefix(text, "-") {
		return "", false
	}
	name := strings.TrimLeft(text, "-")
	if name == "" || !identRe.MatchString(name) {
		return "", false
	}
	return name, true
}

// IsIdent reports whether text is a bare identifier token.
func IsIdent(text string) bool {
	return identRe.MatchString(text)
}

// ParseValue parses one raw token (or list element) into its literal Go
// value: int, float64, bool, string, or []any for a bracketed list. Quoted
// text always parses as a string. The function is total; text that matches
// no literal form is a string.
func ParseValue(text string) any {
	if len(text) >= 2 {
		switch text[0] {
		case '\'', '"':
			if text[len(text)-1] == text[0] {
				return unquote(text)
			}
		case '[':
			if text[len(text)-1] == ']' {
				return parseList(text[1 : len(text)-1])
			}
		}
	}
	switch {
	case intRe.MatchString(text):
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
		return text
	case floatRe.MatchString(text):
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
		return text
	case text == "true" || text == "True":
		return true
	case text == "false" || text == "False":
		return false
	default:
		return text
	}
}

// unquote strips the surrounding quotes and, for double quotes, resolves
// backslash escapes.
func unquote(text string) string {
	quote := text[0]
	inner := text[1 : len(text)-1]
	if quote == '\'' {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// parseList splits the inside of a bracket literal on top-level commas and
// parses each element. Empty elements (stray commas, trailing comma) are
// skipped.
func parseList(inner string) []any {
	elems := []any{}
	depth := 0
	var quote byte
	start := 0
	flush := func(end int) {
		text := strings.TrimSpace(inner[start:end])
		if text != "" {
			elems = append(elems, ParseValue(text))
		}
		start = end + 1
	}
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if quote != 0 {
			if c == '\\' && quote == '"' && i+1 < len(inner) {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
			}
		}
	}
	flush(len(inner))
	return elems
}
