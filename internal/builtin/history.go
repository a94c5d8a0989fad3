package builtin

import (
	"context"
	"fmt"

	"clamshell/internal/descriptor"
	"clamshell/internal/usagelog"
	"clamshell/pkg/clamtypes"
)

// historySpec declares the history command, reading recent entries from the
// usage journal, newest first.
func historySpec(usage *usagelog.Recorder) descriptor.CommandSpec {
	return descriptor.CommandSpec{
		Name: "history",
		Help: "Show recently dispatched commands",
		Args: []descriptor.ArgSpec{
			{
				Name:        "limit",
				Description: "Maximum number of entries to show",
				Type:        descriptor.TypeInt,
				Positional:  true,
				Default:     10,
			},
		},
		Handler: historyHandler(usage),
	}
}

func historyHandler(usage *usagelog.Recorder) clamtypes.Handler {
	return func(_ context.Context, inv *clamtypes.Invocation) (int, error) {
		if usage == nil {
			_, err := fmt.Fprintln(inv.Out, "Usage logging is not configured for this session.")
			return 0, err
		}
		entries, err := usage.Recent(inv.Args.Int("limit"))
		if err != nil {
			return 0, err
		}
		if len(entries) == 0 {
			_, err := fmt.Fprintln(inv.Out, "No invocations recorded yet.")
			return 0, err
		}
		for _, e := range entries {
			_, _ = fmt.Fprintf(inv.Out, "%s  [%d]  %s\n",
				e.StartedAt.Format("2006-01-02 15:04:05"), e.Code, e.Line)
		}
		return 0, nil
	}
}
