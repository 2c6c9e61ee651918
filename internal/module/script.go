package module

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polyscript/engines/risor"
	"github.com/robbyt/go-polyscript/engines/starlark"
	"github.com/robbyt/go-polyscript/platform"
	"github.com/robbyt/go-polyscript/platform/constants"
	"github.com/robbyt/go-polyscript/platform/data"
	"github.com/robbyt/go-polyscript/platform/script/loader"
)

type scriptEngine int

const (
	engineStarlark scriptEngine = iota
	engineRisor
)

func (e scriptEngine) String() string {
	switch e {
	case engineStarlark:
		return "starlark"
	case engineRisor:
		return "risor"
	default:
		return fmt.Sprintf("scriptEngine(%d)", int(e))
	}
}

// scriptLoader compiles a script module at import time and exports it as an asynchronous factory.
// A Starlark module produces its document by assigning it to the "_" global; a Risor module
// produces it as the value of its last expression.
type scriptLoader struct {
	engine  scriptEngine
	handler slog.Handler
}

func newScriptLoader(engine scriptEngine, handler slog.Handler) *scriptLoader {
	return &scriptLoader{engine: engine, handler: emptyInputFilter{handler}}
}

// emptyInputWarning is logged by the script engines on every evaluation without input data.
// Config factories never take input, so the record is noise in the progress stream.
const emptyInputWarning = "empty input data returned from provider"

type emptyInputFilter struct {
	slog.Handler
}

func (f emptyInputFilter) Handle(ctx context.Context, r slog.Record) error {
	if r.Message == emptyInputWarning {
		return nil
	}
	return f.Handler.Handle(ctx, r)
}

func (f emptyInputFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return emptyInputFilter{f.Handler.WithAttrs(attrs)}
}

func (f emptyInputFilter) WithGroup(name string) slog.Handler {
	return emptyInputFilter{f.Handler.WithGroup(name)}
}

func (s *scriptLoader) Load(_ context.Context, path string) (any, error) {
	src, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s script: %w", s.engine, err)
	}

	eval, err := s.compile(src)
	if err != nil {
		return nil, fmt.Errorf("%s script compilation failed: %w", s.engine, err)
	}

	return Async(func(ctx context.Context) <-chan Result {
		ch := make(chan Result, 1)
		go func() {
			defer close(ch)
			v, err := run(ctx, eval)
			ch <- Result{Value: v, Err: err}
		}()
		return ch
	}), nil
}

func (s *scriptLoader) compile(src loader.Loader) (platform.Evaluator, error) {
	switch s.engine {
	case engineStarlark:
		return starlark.FromStarlarkLoader(s.handler, src)
	case engineRisor:
		return risor.FromRisorLoader(s.handler, src)
	default:
		return nil, fmt.Errorf("unknown script engine %s", s.engine)
	}
}

// run evaluates the script with an empty input namespace; config factories take no arguments.
func run(ctx context.Context, eval platform.Evaluator) (any, error) {
	provider := data.NewContextProvider(constants.EvalData)
	evalCtx, err := provider.AddDataToContext(ctx, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare script context: %w", err)
	}

	resp, err := eval.Eval(evalCtx)
	if err != nil {
		return nil, fmt.Errorf("script evaluation failed: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Interface(), nil
}
