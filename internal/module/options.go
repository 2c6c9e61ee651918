package module

import "log/slog"

type Option func(*Importer)

// WithLogger sets a custom logger for the Importer instance.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Importer instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(i *Importer) {
		i.logger = slog.New(handler)
	}
}
