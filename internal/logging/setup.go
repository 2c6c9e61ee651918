// Package logging configures the slog handlers used by the actorspec CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/logging/writers"
	"github.com/charmbracelet/log"
)

// Options selects the handler format, level and destination for NewLogger.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values mean info.
	Level string
	// Format is "text" (default) or "json".
	Format string
	// Output is a writers.CreateWriter destination: stdout, stderr, discard, or a file path.
	Output string
}

// NewLogger builds a logger from opts.
func NewLogger(opts Options) (*slog.Logger, error) {
	w, err := writers.CreateWriter(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	switch strings.ToLower(opts.Format) {
	case "", "text", "txt":
		return slog.New(TextHandler(opts.Level, w)), nil
	case "json":
		return slog.New(JSONHandler(opts.Level, w)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", opts.Format)
	}
}

// verbosity is a parsed --log-level value. Trace is debug plus caller locations.
type verbosity struct {
	level slog.Level
	trace bool
}

func parseVerbosity(name string) verbosity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return verbosity{level: slog.LevelDebug, trace: true}
	case "debug":
		return verbosity{level: slog.LevelDebug}
	case "warn", "warning":
		return verbosity{level: slog.LevelWarn}
	case "error":
		return verbosity{level: slog.LevelError}
	default:
		return verbosity{level: slog.LevelInfo}
	}
}

// TextHandler returns a charm log handler writing to w, or stderr when w is nil.
// Debug and trace levels also print timestamps.
func TextHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	v := parseVerbosity(level)
	return log.NewWithOptions(w, log.Options{
		Level:           log.Level(v.level),
		ReportTimestamp: v.level <= slog.LevelDebug,
		ReportCaller:    v.trace,
	})
}

// JSONHandler returns a slog JSON handler writing to w, or stdout when w is nil.
func JSONHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	v := parseVerbosity(level)
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     v.level,
		AddSource: v.trace,
	})
}
