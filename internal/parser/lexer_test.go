package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "lookup-hosts a b", []string{"lookup-hosts", "a", "b"}},
		{"repeated spaces", "a   b\tc", []string{"a", "b", "c"}},
		{"double quoted token", `say "hello world"`, []string{"say", `"hello world"`}},
		{"single quoted token", `say 'a b'`, []string{"say", `'a b'`}},
		{"assignment with quoted value", `run cmd="ls -la"`, []string{"run", `cmd="ls -la"`}},
		{"bracket list with spaces", "pick stuff=[red, green]", []string{"pick", "stuff=[red, green]"}},
		{"nested brackets", "x v=[[1, 2], [3]]", []string{"x", "v=[[1, 2], [3]]"}},
		{"bracket containing quoted comma", `x v=[a, "b, c"]`, []string{"x", `v=[a, "b, c"]`}},
		{"empty line", "", nil},
		{"blank line", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Texts(tokens))
		})
	}
}

func TestLexOffsets(t *testing.T) {
	line := `pick style=test stuff=[red, blue]`
	tokens, err := Lex(line)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		assert.Equal(t, tok.Text, line[tok.Start:tok.End])
	}
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 5, tokens[1].Start)
	assert.Equal(t, len(line), tokens[2].End)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		msg  string
	}{
		{"unterminated double quote", `say "oops`, "unterminated quote"},
		{"unterminated single quote", "say 'oops", "unterminated quote"},
		{"open bracket", "pick stuff=[red", "unbalanced '['"},
		{"stray close bracket", "pick stuff=red]", "unexpected ']'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.line)
			require.Error(t, err)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLexPrefixIsLenient(t *testing.T) {
	tokens := LexPrefix(`pick stuff=[re`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "stuff=[re", tokens[1].Text)

	tokens = LexPrefix(`say "unfinish`)
	require.Len(t, tokens, 2)
	assert.Equal(t, `"unfinish`, tokens[1].Text)
}

func TestMergeBrackets(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{"balanced untouched", []string{"pick", "style=test"}, []string{"pick", "style=test"}},
		{"split list rejoined", []string{"pick", "stuff=[red,", "blue]"}, []string{"pick", "stuff=[red, blue]"}},
		{"three way split", []string{"x", "v=[a,", "b,", "c]"}, []string{"x", "v=[a, b, c]"}},
		{"unclosed stays joined", []string{"x", "v=[a,", "b"}, []string{"x", "v=[a, b"}},
		{"empty argv", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeBrackets(tt.argv))
		})
	}
}
