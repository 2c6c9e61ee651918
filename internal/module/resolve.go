package module

import (
	"context"
	"fmt"
	"reflect"

	"github.com/atlanticdynamic/actorspec/internal/errz"
)

// Module is a loaded config module: its absolute path and its classified default export.
type Module struct {
	Path   string
	Export Export
}

// Resolve turns the default export into a concrete object. Factories are invoked with no arguments
// and their result is awaited whether they are synchronous or asynchronous.
func (m *Module) Resolve(ctx context.Context) (any, error) {
	var (
		v   any
		err error
	)

	switch m.Export.kind {
	case KindValue:
		v = m.Export.value
	case KindFunc:
		v, err = m.Export.fn(ctx)
	case KindAsync:
		v, err = await(ctx, m.Export.async(ctx))
	default:
		return nil, errz.New(errz.ErrInvalidExport, m.Path, ErrNoDefaultExport)
	}

	if err != nil {
		return nil, errz.New(errz.ErrUnresolvedConfig, m.Path, err)
	}
	if err := checkResolved(v); err != nil {
		return nil, errz.New(errz.ErrUnresolvedConfig, m.Path, err)
	}
	return v, nil
}

func await(ctx context.Context, ch <-chan Result) (any, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrFactoryFailed, ctx.Err())
	case res, ok := <-ch:
		if !ok {
			return nil, ErrNoResult
		}
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFactoryFailed, res.Err)
		}
		return res.Value, nil
	}
}

func checkResolved(v any) error {
	if v == nil {
		return ErrResolvedNil
	}
	if isFalsy(v) {
		return fmt.Errorf("%w: %v", ErrResolvedFalsy, v)
	}
	if !IsObject(v) {
		return fmt.Errorf("%w: got %T", ErrResolvedNonObject, v)
	}
	return nil
}

// isFalsy reports the zero values a config author would consider "nothing": nil pointers, false,
// numeric zero and the empty string.
func isFalsy(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}
