// Package module loads a user config module from disk and resolves its default export into a
// concrete document.
//
// A default export is one of three shapes, modeled as the tagged union Export:
//
//   - a value used as-is (KindValue)
//   - a synchronous factory invoked with no arguments (KindFunc)
//   - an asynchronous factory whose result is awaited (KindAsync)
//
// Module.Resolve is the only place that inspects the kind.
package module

import (
	"context"
	"fmt"
	"reflect"
)

// Kind tags the shape of a default export.
type Kind int

const (
	KindInvalid Kind = iota
	KindValue
	KindFunc
	KindAsync
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindFunc:
		return "func"
	case KindAsync:
		return "async"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is what an asynchronous factory delivers.
type Result struct {
	Value any
	Err   error
}

// Export is the default export of a config module.
type Export struct {
	kind  Kind
	value any
	fn    func(context.Context) (any, error)
	async func(context.Context) <-chan Result
}

// Value wraps a ready-made document.
func Value(v any) Export {
	return Export{kind: KindValue, value: v}
}

// Func wraps a synchronous factory.
func Func(fn func(context.Context) (any, error)) Export {
	if fn == nil {
		return Export{}
	}
	return Export{kind: KindFunc, fn: fn}
}

// Async wraps an asynchronous factory. The factory must send exactly one Result or close the channel.
func Async(fn func(context.Context) <-chan Result) Export {
	if fn == nil {
		return Export{}
	}
	return Export{kind: KindAsync, async: fn}
}

// Kind reports the shape of the export.
func (e Export) Kind() Kind {
	return e.kind
}

func (e Export) String() string {
	if e.kind == KindValue {
		return fmt.Sprintf("Export(value %T)", e.value)
	}
	return fmt.Sprintf("Export(%s)", e.kind)
}

// Classify inspects a loaded default export and tags it by capability. Callables become factories,
// objects become values. nil and every other type (strings, numbers, booleans, slices) are rejected.
func Classify(v any) (Export, error) {
	switch x := v.(type) {
	case nil:
		return Export{}, ErrNoDefaultExport
	case Export:
		if x.kind == KindInvalid {
			return Export{}, ErrNoDefaultExport
		}
		return x, nil
	case func(context.Context) (any, error):
		return Func(x), nil
	case func() (any, error):
		return Func(func(context.Context) (any, error) { return x() }), nil
	case func() any:
		return Func(func(context.Context) (any, error) { return x(), nil }), nil
	case func(context.Context) <-chan Result:
		return Async(x), nil
	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return Export{}, fmt.Errorf("%w: %T", ErrUnsupportedFactory, v)
	}
	if !IsObject(v) {
		return Export{}, fmt.Errorf("%w: got %T", ErrNotObjectOrCallable, v)
	}
	return Value(v), nil
}

// IsObject reports whether v serializes to a JSON object: a string-keyed map, a struct, or a
// non-nil pointer to either.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}
