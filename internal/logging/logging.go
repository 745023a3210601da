// Package logging configures the process-wide slog logger for numconv.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs a text handler on stderr as the default logger. The
// level is derived from the repeatable -v flag: warnings only by
// default, informational at -v, debug at -vv and beyond. Timestamps are
// dropped since output is a short-lived interactive session.
func Setup(verbosity int) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(verbosity),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

func levelFor(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
