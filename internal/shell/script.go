package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunScript dispatches commands read line by line from r, stopping at the
// first nonzero code, which becomes the return value. Blank lines and #
// comments are skipped; a stop request from a handler and plain EOF both
// return 0.
func (a *App) RunScript(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if skippable(line) {
			continue
		}

		res := a.dispatcher.DispatchLine(context.Background(), line)
		if res.Err != nil {
			a.printer.Error(fmt.Sprintf("line %d: %v", lineNo, res.Err))
			a.printHint(res.Err)
			return res.Code
		}
		if res.Stop {
			return 0
		}
		if res.Code != 0 {
			a.logger.Debug("script stopped on nonzero code", "line", lineNo, "code", res.Code)
			return res.Code
		}
	}
	if err := scanner.Err(); err != nil {
		a.printer.Error(fmt.Sprintf("failed to read script: %v", err))
		return 1
	}
	return 0
}
