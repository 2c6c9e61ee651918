// Package regen provides a supervised runnable that keeps actorspec.json in sync with its config
// module.
package regen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atlanticdynamic/actorspec/internal/finitestate"
	"github.com/atlanticdynamic/actorspec/internal/generate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable   = (*Runner)(nil)
	_ supervisor.Reloadable = (*Runner)(nil)
	_ supervisor.Stateable  = (*Runner)(nil)
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = time.Second

var ErrNoGenerator = errors.New("generator is required")

// Runner generates the artifact once on start, then again on every Reload and whenever the config
// file's modification time changes. A failed generation is recorded and logged; the runner stays
// Running so the author can fix the config while it keeps watching.
type Runner struct {
	configPath string
	absPath    string
	generator  *generate.Generator
	interval   time.Duration

	logger *slog.Logger
	fsm    finitestate.Machine

	genMu      sync.Mutex
	lastMod    time.Time
	lastResult atomic.Pointer[generate.Result]
	lastErr    atomic.Pointer[error]
	runs       atomic.Uint64

	runMu     sync.Mutex
	runCancel context.CancelFunc
	runDone   chan struct{}
	parentCtx context.Context
}

// NewRunner creates a Runner for the config module at configPath, resolved by gen.
func NewRunner(configPath string, gen *generate.Generator, opts ...Option) (*Runner, error) {
	if gen == nil {
		return nil, ErrNoGenerator
	}
	if configPath == "" {
		return nil, generate.ErrConfigRequired
	}

	r := &Runner{
		configPath: configPath,
		absPath:    gen.Paths().ToAbsolute(configPath),
		generator:  gen,
		interval:   DefaultInterval,
		logger:     slog.Default().WithGroup("regen.Runner"),
		parentCtx:  context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}

	machine, err := finitestate.New(r.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	r.fsm = machine
	return r, nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return "regen.Runner"
}

// Run implements the supervisor.Runnable interface. It blocks until ctx, the parent context or Stop
// ends it.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("Starting Runner", "config", r.absPath, "interval", r.interval)

	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan struct{})
	defer close(done)

	r.runMu.Lock()
	r.runCancel, r.runDone = cancel, done
	r.runMu.Unlock()

	_ = r.regenerate(runCtx, "start")

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}

	r.watch(runCtx)

	r.logger.Debug("Runner shutting down")
	if r.fsm.GetState() != finitestate.StatusStopping {
		if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
			r.logger.Debug("Forcing stopping state", "from", r.fsm.GetState(), "error", err)
			if err := r.fsm.SetState(finitestate.StatusStopping); err != nil {
				r.logger.Error("Failed to set stopping state", "error", err)
			}
		}
	}
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}
	return nil
}

// watch polls the config file until runCtx or the parent context is done.
func (r *Runner) watch(runCtx context.Context) {
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-r.parentCtx.Done():
			r.logger.Debug("Parent context canceled")
			return
		case <-runCtx.Done():
			r.logger.Debug("Run context canceled")
			return
		case <-tick:
			if r.changed() {
				_ = r.regenerate(runCtx, "change")
			}
		}
	}
}

// Stop implements the supervisor.Runnable interface. It returns once Run has exited.
func (r *Runner) Stop() {
	r.logger.Debug("Stopping Runner")

	r.runMu.Lock()
	cancel, done := r.runCancel, r.runDone
	r.runMu.Unlock()
	if cancel == nil {
		return
	}

	if err := r.fsm.TransitionIfCurrentState(finitestate.StatusRunning, finitestate.StatusStopping); err != nil {
		r.logger.Debug("Stopping from non-running state", "state", r.fsm.GetState())
	}
	cancel()
	<-done
}

// Reload implements the supervisor.Reloadable interface. It regenerates under ctx and returns the
// generation error. Reloads requested while the runner is not Running are skipped.
func (r *Runner) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.fsm.TransitionIfCurrentState(finitestate.StatusRunning, finitestate.StatusReloading); err != nil {
		r.logger.Debug("Skipping reload, runner is not running", "state", r.fsm.GetState())
		return nil
	}

	genErr := r.regenerate(ctx, "reload")

	if err := r.fsm.TransitionIfCurrentState(finitestate.StatusReloading, finitestate.StatusRunning); err != nil {
		r.logger.Error("Failed to transition back to running state", "error", err)
		return errors.Join(genErr, err)
	}
	return genErr
}

// GetState implements the supervisor.Stateable interface
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// GetStateChan implements the supervisor.Stateable interface
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}

// LastResult returns the most recent successful generation, or nil.
func (r *Runner) LastResult() *generate.Result {
	return r.lastResult.Load()
}

// LastError returns the error of the most recent generation, or nil when it succeeded.
func (r *Runner) LastError() error {
	if p := r.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Runs returns how many generations have been attempted.
func (r *Runner) Runs() uint64 {
	return r.runs.Load()
}

func (r *Runner) regenerate(ctx context.Context, trigger string) error {
	r.genMu.Lock()
	defer r.genMu.Unlock()

	if mod, err := r.modTime(); err == nil {
		r.lastMod = mod
	}

	defer r.runs.Add(1)
	res, err := r.generator.Generate(ctx, r.configPath)
	if err != nil {
		r.lastErr.Store(&err)
		r.logger.Error("Failed to generate actorspec", "trigger", trigger, "error", err)
		return err
	}

	r.lastErr.Store(nil)
	r.lastResult.Store(res)
	r.logger.Info("Actorspec regenerated", "trigger", trigger, "output", res.OutputPath)
	return nil
}

// changed reports whether the config file's modification time differs from the last generation.
func (r *Runner) changed() bool {
	mod, err := r.modTime()
	if err != nil {
		r.logger.Debug("Failed to stat config", "error", err)
		return false
	}

	r.genMu.Lock()
	defer r.genMu.Unlock()
	return !mod.Equal(r.lastMod)
}

func (r *Runner) modTime() (time.Time, error) {
	info, err := os.Stat(r.absPath)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", r.absPath, err)
	}
	return info.ModTime(), nil
}
