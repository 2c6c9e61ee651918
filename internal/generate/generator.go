// Package generate turns a user config module into an actorspec.json artifact: resolve the path,
// import the module, resolve its default export, validate it and write it atomically.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/atlanticdynamic/actorspec/internal/document"
	"github.com/atlanticdynamic/actorspec/internal/errz"
	"github.com/atlanticdynamic/actorspec/internal/interpolation"
	"github.com/atlanticdynamic/actorspec/internal/module"
	"github.com/gofrs/uuid/v5"
	"github.com/joho/godotenv"
)

// Params are the inputs of a single generate invocation. Paths are relative to the working directory.
type Params struct {
	Config string
	OutDir string
	Silent bool
}

// Resolved is a config module that has been imported, resolved and validated.
type Resolved struct {
	Run        *Run
	ConfigPath string
	Document   any
}

// Result describes a written artifact.
type Result struct {
	RunID      uuid.UUID
	ConfigPath string
	OutputPath string
	Document   any
	Bytes      int
	Duration   time.Duration
}

// Generator runs the config resolution pipeline. It holds no per-run state and is safe for
// sequential reuse.
type Generator struct {
	paths          Paths
	cwd            string
	outDir         string
	silent         bool
	expandEnv      bool
	envFiles       []string
	timeout        time.Duration
	validator      Validator
	importer       *module.Importer
	handler        slog.Handler
	failureHandler slog.Handler
}

// Generate is the one-shot form of Generator.Generate.
func Generate(ctx context.Context, p Params, opts ...Option) (*Result, error) {
	opts = append(opts, WithOutDir(p.OutDir), WithSilent(p.Silent))
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, p.Config)
}

// New creates a Generator. Without options it validates only actorspecVersion, logs through
// slog.Default and resolves paths against the process working directory.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		validator: VersionValidator{},
	}
	for _, opt := range opts {
		opt(g)
	}

	paths, err := NewPaths(g.cwd)
	if err != nil {
		return nil, err
	}
	g.paths = paths

	if g.handler == nil {
		g.handler = slog.Default().Handler()
	}
	if g.importer == nil {
		importHandler := g.handler
		if g.silent {
			importHandler = slog.DiscardHandler
		}
		g.importer = module.NewImporter(
			module.WithLogHandler(importHandler),
		)
	}
	return g, nil
}

// Paths returns the path resolver of the generator.
func (g *Generator) Paths() Paths {
	return g.paths
}

// Resolve imports the config module at configPath, resolves its default export and validates it.
// Nothing is written.
func (g *Generator) Resolve(ctx context.Context, configPath string) (*Resolved, error) {
	if configPath == "" {
		return nil, ErrConfigRequired
	}

	abs := g.paths.ToAbsolute(configPath)
	run := g.newRun(abs)

	doc, err := g.resolve(ctx, run, abs)
	if err != nil {
		g.fail(run, err)
		return nil, err
	}
	return &Resolved{Run: run, ConfigPath: abs, Document: doc}, nil
}

// Generate resolves configPath and writes the result to the output directory as actorspec.json.
func (g *Generator) Generate(ctx context.Context, configPath string) (*Result, error) {
	res, err := g.Resolve(ctx, configPath)
	if err != nil {
		return nil, err
	}

	out, err := g.write(res)
	if err != nil {
		g.fail(res.Run, err)
		return nil, err
	}
	return out, nil
}

func (g *Generator) newRun(abs string) *Run {
	if g.silent {
		return newRun(abs, nil)
	}
	return newRun(abs, g.handler)
}

func (g *Generator) resolve(ctx context.Context, run *Run, abs string) (any, error) {
	logger := run.Logger()

	if len(g.envFiles) > 0 {
		files := make([]string, 0, len(g.envFiles))
		for _, f := range g.envFiles {
			files = append(files, g.paths.ToAbsolute(f))
		}
		if err := godotenv.Load(files...); err != nil {
			return nil, errz.New(errz.ErrFilesystem, abs, fmt.Errorf("failed to load env files: %w", err))
		}
		logger.Debug("Loaded env files", "files", files)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	logger.Info("Importing config module", "path", abs)
	mod, err := g.importer.Import(ctx, abs)
	if err != nil {
		return nil, err
	}

	doc, err := mod.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Config resolved", "export", mod.Export.Kind())

	if g.expandEnv {
		normalized, err := document.Normalize(doc)
		if err != nil {
			return nil, errz.New(errz.ErrUnresolvedConfig, abs, fmt.Errorf("%w: %w", ErrNotSerializable, err))
		}
		doc, err = interpolation.InterpolateDocument(normalized)
		if err != nil {
			return nil, errz.New(errz.ErrInterpolation, abs, err)
		}
		logger.Debug("Environment variables expanded")
	}

	if err := g.validator.Validate(doc); err != nil {
		return nil, errz.New(validationKind(err), abs, err)
	}
	return doc, nil
}

func (g *Generator) write(res *Resolved) (*Result, error) {
	logger := res.Run.Logger()

	data, err := Marshal(res.Document)
	if err != nil {
		return nil, errz.New(errz.ErrUnresolvedConfig, res.ConfigPath, err)
	}

	dir := ResolveOutDir(g.paths, g.outDir)
	logger.Info("Writing actorspec", "destination", dir)
	if target := filepath.Join(dir, FileName); target == res.ConfigPath {
		logger.Warn("Artifact overwrites the config module", "path", target)
	}

	path, err := WriteArtifact(dir, data)
	if err != nil {
		return nil, errz.New(errz.ErrFilesystem, res.ConfigPath, err)
	}

	duration := res.Run.Duration()
	logger.Info("Actorspec generated", "output", path, "bytes", len(data), "duration", duration)

	return &Result{
		RunID:      res.Run.ID,
		ConfigPath: res.ConfigPath,
		OutputPath: path,
		Document:   res.Document,
		Bytes:      len(data),
		Duration:   duration,
	}, nil
}

// fail logs err on the run and, for silent runs, replays the collected logs to the failure handler.
func (g *Generator) fail(run *Run, err error) {
	run.Logger().Debug("Generation failed", "error", err)
	if !g.silent || g.failureHandler == nil {
		return
	}
	if perr := run.PlaybackLogs(g.failureHandler); perr != nil {
		slog.New(g.failureHandler).Warn("Failed to replay run logs", "error", perr)
	}
}
