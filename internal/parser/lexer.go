// Package parser tokenizes command lines and parses argument literals.
// The same grammar serves the interactive loop, script execution and the
// completion engine: whitespace separates tokens, quoted substrings stay
// whole, and a bracketed list is a single token even when it spans spaces.
// Tokens keep their raw text and byte offsets; quote handling happens when
// a token is parsed as a value.
package parser

import "fmt"

// Token is one raw token of a command line. Text preserves quotes and
// brackets exactly as typed; Start and End are byte offsets into the line,
// with End exclusive.
type Token struct {
	Text  string
	Start int
	End   int
}

// ParseError reports a malformed command line.
type ParseError struct {
	Line string
	Pos  int
	Msg  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Pos+1, e.Msg)
}

// Lex splits a command line into tokens. Unterminated quotes and unbalanced
// brackets are errors.
func Lex(line string) ([]Token, error) {
	return scan(line, true)
}

// LexPrefix tokenizes the left part of a line for completion. It never
// fails: an unterminated quote or open bracket simply extends the final
// token to the end of the input.
func LexPrefix(line string) []Token {
	tokens, _ := scan(line, false)
	return tokens
}

func scan(line string, strict bool) ([]Token, error) {
	var tokens []Token
	i, n := 0, len(line)
	for i < n {
		if line[i] == ' ' || line[i] == '\t' {
			i++
			continue
		}
		start := i
		var quote byte
		quotePos := -1
		depth := 0
		bracketPos := -1
	word:
		for i < n {
			c := line[i]
			if quote != 0 {
				if c == '\\' && quote == '"' && i+1 < n {
					i += 2
					continue
				}
				if c == quote {
					quote = 0
				}
				i++
				continue
			}
			switch c {
			case '\'', '"':
				quote = c
				quotePos = i
			case '[':
				depth++
				if depth == 1 {
					bracketPos = i
				}
			case ']':
				if depth == 0 {
					if strict {
						return nil, &ParseError{Line: line, Pos: i, Msg: "unexpected ']'"}
					}
				} else {
					depth--
				}
			case ' ', '\t':
				if depth == 0 {
					break word
				}
			}
			i++
		}
		if strict && quote != 0 {
			return nil, &ParseError{Line: line, Pos: quotePos, Msg: "unterminated quote"}
		}
		if strict && depth != 0 {
			return nil, &ParseError{Line: line, Pos: bracketPos, Msg: "unbalanced '['"}
		}
		tokens = append(tokens, Token{Text: line[start:i], Start: start, End: i})
	}
	return tokens, nil
}

// Texts projects the raw text of each token, the form the registry and
// binder consume.
func Texts(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// MergeBrackets re-joins argv tokens whose list brackets the OS shell split
// apart, so `stuff=[red,` `blue]` binds like the interactive spelling. Argv
// is returned unchanged when every token is already balanced.
func MergeBrackets(argv []string) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		for bracketDepth(tok) > 0 && i+1 < len(argv) {
			i++
			tok += " " + argv[i]
		}
		out = append(out, tok)
	}
	return out
}

// OpenBracket reports whether s has an unclosed '[' outside quotes, i.e.
// the cursor at its end sits inside a list literal.
func OpenBracket(s string) bool {
	return bracketDepth(s) > 0
}

// bracketDepth counts unclosed '[' outside quotes.
func bracketDepth(s string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' && quote == '"' && i+1 < len(s) {
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
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}
