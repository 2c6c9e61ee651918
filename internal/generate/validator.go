package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/atlanticdynamic/actorspec/internal/document"
	"github.com/atlanticdynamic/actorspec/internal/errz"
	"github.com/atlanticdynamic/actorspec/internal/schema"
)

// Validator checks a resolved config document before it is written.
type Validator interface {
	Validate(doc any) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(doc any) error

func (f ValidatorFunc) Validate(doc any) error {
	return f(doc)
}

// VersionValidator only requires a truthy actorspecVersion.
type VersionValidator struct{}

func (VersionValidator) Validate(doc any) error {
	v, ok, err := versionOf(doc)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVersionAbsent
	}
	if !truthy(v) {
		return fmt.Errorf("%w: got %v", ErrVersionFalsy, v)
	}
	return nil
}

// SchemaValidator checks the document against the ScraperActorSpec JSON Schema, then runs the
// cross-field checks the schema cannot express (single default dataset, known mode references).
type SchemaValidator struct{}

func (SchemaValidator) Validate(doc any) error {
	generic, err := toGeneric(doc)
	if err != nil {
		return err
	}
	if err := schema.ValidateDocument(generic); err != nil {
		return fmt.Errorf("%w: %w", errz.ErrSchemaViolation, err)
	}

	spec, err := schema.Decode(generic)
	if err != nil {
		return fmt.Errorf("%w: %w", errz.ErrSchemaViolation, err)
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errz.ErrSchemaViolation, err)
	}
	return nil
}

// Chain runs validators in order and stops at the first failure.
func Chain(validators ...Validator) Validator {
	return ValidatorFunc(func(doc any) error {
		for _, v := range validators {
			if err := v.Validate(doc); err != nil {
				return err
			}
		}
		return nil
	})
}

// Strict is the version check followed by full schema validation.
func Strict() Validator {
	return Chain(VersionValidator{}, SchemaValidator{})
}

// validationKind maps a validator failure onto a pipeline error kind.
func validationKind(err error) error {
	if errors.Is(err, ErrVersionAbsent) || errors.Is(err, ErrVersionFalsy) {
		return errz.ErrMissingVersion
	}
	if errors.Is(err, ErrNotSerializable) {
		return errz.ErrUnresolvedConfig
	}
	return errz.ErrSchemaViolation
}

// versionOf looks up actorspecVersion, converting doc through JSON when it is not already a
// decoded object.
func versionOf(doc any) (any, bool, error) {
	switch d := doc.(type) {
	case *document.Object:
		v, ok := d.Get(schema.VersionField)
		return v, ok, nil
	case map[string]any:
		v, ok := d[schema.VersionField]
		return v, ok, nil
	}

	normalized, err := document.Normalize(doc)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrNotSerializable, err)
	}
	obj, ok := normalized.(*document.Object)
	if !ok {
		return nil, false, fmt.Errorf("%w: got %T", ErrNotSerializable, doc)
	}
	v, ok := obj.Get(schema.VersionField)
	return v, ok, nil
}

// toGeneric converts doc into the plain JSON tree produced by encoding/json.
func toGeneric(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotSerializable, err)
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotSerializable, err)
	}
	return out, nil
}

// truthy follows the usual scripting rules: nil, false, zero, NaN and "" are falsy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String() != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return !rv.IsZero()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	default:
		return true
	}
}
