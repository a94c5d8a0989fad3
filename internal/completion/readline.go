package completion

import (
	"strings"

	"github.com/chzyer/readline"
)

// ReadlineCompleter adapts an Engine to the readline AutoCompleter contract
// used by the interactive shell: candidates are returned as suffixes of the
// word under the cursor, plus the rune length of that word.
type ReadlineCompleter struct {
	engine *Engine
}

var _ readline.AutoCompleter = (*ReadlineCompleter)(nil)

// NewReadlineCompleter wraps an engine for use as a shell completer.
func NewReadlineCompleter(engine *Engine) *ReadlineCompleter {
	return &ReadlineCompleter{engine: engine}
}

// Do implements the readline AutoCompleter interface. The line arrives as
// runes with a rune offset; the engine works in bytes, so both are converted
// at the boundary. Candidates that do not literally extend the typed span
// are dropped because readline can only append, not rewrite.
func (c *ReadlineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos < 0 || pos > len(line) {
		return nil, 0
	}
	buffer := string(line)
	cursor := len(string(line[:pos]))

	res := c.engine.Complete(buffer, cursor)
	span := buffer[res.Start:res.End]

	var out [][]rune
	for _, candidate := range res.Candidates {
		if !strings.HasPrefix(candidate, span) {
			continue
		}
		out = append(out, []rune(candidate[len(span):]))
	}
	return out, len([]rune(span))
}
