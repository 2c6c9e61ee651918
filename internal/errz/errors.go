// Package errz provides the shared error kinds raised while turning a config module into an
// actorspec.json artifact.
package errz

import (
	"errors"
	"fmt"
)

// Pipeline error kinds
var (
	ErrImport           = errors.New("failed to import config module")
	ErrInvalidExport    = errors.New("invalid default export")
	ErrUnresolvedConfig = errors.New("config did not resolve to an object")
	ErrMissingVersion   = errors.New("missing actorspecVersion")
	ErrFilesystem       = errors.New("filesystem error")
)

// Validation and preprocessing errors
var (
	ErrSchemaViolation = errors.New("schema violation")
	ErrInterpolation   = errors.New("environment interpolation failed")
)

// SourceError ties an error kind to the absolute path of the config module that caused it.
type SourceError struct {
	Kind error
	Path string
	Err  error
}

// New wraps err with the given kind and absolute source path. A nil err is allowed.
func New(kind error, path string, err error) *SourceError {
	return &SourceError{Kind: kind, Path: path, Err: err}
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the pipeline error kind carried by err, or nil when err is not a SourceError.
func KindOf(err error) error {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return nil
}
