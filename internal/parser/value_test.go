package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{"int", "42", 42},
		{"negative int", "-7", -7},
		{"float", "3.14", 3.14},
		{"float with exponent", "1.5e3", 1500.0},
		{"negative float", "-0.5", -0.5},
		{"bool true", "true", true},
		{"bool capital true", "True", true},
		{"bool false", "false", false},
		{"bool capital false", "False", false},
		{"bare word", "hello", "hello"},
		{"word with symbols", "path/to-file.txt", "path/to-file.txt"},
		{"quoted number stays string", `"5"`, "5"},
		{"quoted bool stays string", `'true'`, "true"},
		{"quoted spaces", `"a b"`, "a b"},
		{"double quote escapes", `"a\"b\n"`, "a\"b\n"},
		{"single quotes literal", `'a\"b'`, `a\"b`},
		{"quoted list literal stays string", `"[1, 2]"`, "[1, 2]"},
		{"empty list", "[]", []any{}},
		{"scalar list", "[1, 2, 3]", []any{1, 2, 3}},
		{"mixed list", `[1, two, 3.5, true]`, []any{1, "two", 3.5, true}},
		{"quoted element keeps comma", `[a, "b, c"]`, []any{"a", "b, c"}},
		{"nested list", "[[1, 2], [3]]", []any{[]any{1, 2}, []any{3}}},
		{"trailing comma skipped", "[a, ]", []any{"a"}},
		{"spaces around elements", "[ a ,b ]", []any{"a", "b"}},
		{"empty string", "", ""},
		{"oversized int stays string", "99999999999999999999999999", "99999999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.text))
		})
	}
}

func TestSplitAssign(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{"simple", "nice=5", "nice", "5", true},
		{"empty value", "nice=", "nice", "", true},
		{"value keeps later equals", "expr=a=b", "expr", "a=b", true},
		{"list value", "stuff=[red, blue]", "stuff", "[red, blue]", true},
		{"quoted value", `cmd="ls -la"`, "cmd", `"ls -la"`, true},
		{"underscore and dash names", "max_results=3", "max_results", "3", true},
		{"quoted token is positional", `"a=b"`, "", "", false},
		{"list token is positional", "[a=b]", "", "", false},
		{"no equals", "plain", "", "", false},
		{"leading equals", "=x", "", "", false},
		{"name starting with digit", "1st=x", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, ok := SplitAssign(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, name)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFlagName(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"--nice", "nice", true},
		{"--max-results", "max-results", true},
		{"-i", "i", true},
		{"-5", "", false},
		{"--", "", false},
		{"plain", "", false},
		{"-1.5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name, ok := FlagName(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
