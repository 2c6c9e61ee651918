package schema

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilterCompleteness = errors.New("invalid filterCompleteness")
	ErrInvalidCount              = errors.New(`count must be a number or "all"`)
	ErrMissingRequiredField      = errors.New("missing required field")
	ErrNegativeValue             = errors.New("value must not be negative")
	ErrMultipleDefaults          = errors.New("more than one default")
)

// fieldError prefixes err with the JSON path of the offending field.
func fieldError(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
