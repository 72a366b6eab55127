package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// initLogging installs the process-wide slog handler. Solver output goes
// to stdout, so logs default to stderr. Any format other than "json"
// gets the key=value text handler.
func initLogging(level slog.Level, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

// newLogger tags records with the solver or command that emitted them.
func newLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
