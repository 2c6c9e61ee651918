package regen

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a Runner. Nil arguments leave the default in place.
type Option func(*Runner)

// WithLogger replaces the Runner's logger as given, without adding a group.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLogHandler logs through handler under the "regen.Runner" group.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup(r.String())
		}
	}
}

// WithContext makes ctx the parent of every run, so cancelling it stops the Runner.
func WithContext(ctx context.Context) Option {
	return func(r *Runner) {
		if ctx != nil {
			r.parentCtx = ctx
		}
	}
}

// WithInterval sets the config file polling interval. Zero or negative disables polling,
// leaving Reload as the only trigger.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.interval = max(d, 0)
	}
}
