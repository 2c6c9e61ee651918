package generate

import (
	"log/slog"
	"time"

	"github.com/atlanticdynamic/actorspec/internal/module"
)

type Option func(*Generator)

// WithLogger sets the logger used for progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.handler = logger.Handler()
	}
}

// WithLogHandler sets the handler used for progress output.
func WithLogHandler(handler slog.Handler) Option {
	return func(g *Generator) {
		g.handler = handler
	}
}

// WithCWD anchors relative config and output paths at dir instead of the process working directory.
func WithCWD(dir string) Option {
	return func(g *Generator) {
		g.cwd = dir
	}
}

// WithOutDir sets an explicit output directory, relative to the working directory.
func WithOutDir(dir string) Option {
	return func(g *Generator) {
		g.outDir = dir
	}
}

// WithSilent suppresses progress output. Logs are still collected per run.
func WithSilent(silent bool) Option {
	return func(g *Generator) {
		g.silent = silent
	}
}

// WithFailureHandler replays the collected logs of a failed silent run to handler.
func WithFailureHandler(handler slog.Handler) Option {
	return func(g *Generator) {
		g.failureHandler = handler
	}
}

// WithValidator replaces the default VersionValidator.
func WithValidator(v Validator) Option {
	return func(g *Generator) {
		g.validator = v
	}
}

// WithExpandEnv enables ${VAR} and ${VAR:default} expansion over every string in the resolved
// document.
func WithExpandEnv(enabled bool) Option {
	return func(g *Generator) {
		g.expandEnv = enabled
	}
}

// WithEnvFiles loads the given dotenv files into the process environment before importing. Variables
// already set are not overridden.
func WithEnvFiles(files ...string) Option {
	return func(g *Generator) {
		g.envFiles = append(g.envFiles, files...)
	}
}

// WithTimeout bounds import and resolution. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithImporter replaces the default module importer.
func WithImporter(imp *module.Importer) Option {
	return func(g *Generator) {
		g.importer = imp
	}
}
