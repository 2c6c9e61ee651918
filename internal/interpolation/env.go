// Package interpolation expands ${VAR} and ${VAR:default} references inside resolved config
// documents.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrUndefined is wrapped by every error about a reference with no value and no default.
var ErrUndefined = errors.New("environment variable not defined")

// reference matches ${NAME} and ${NAME:default}. Group 2 is the default and is only
// present when the colon is.
var reference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// ExpandEnvVars replaces ${NAME} and ${NAME:default} in input with values from the process
// environment. A set variable wins over its default, and ${NAME:} defaults to the empty string.
// References with neither are left in place and reported in the returned error.
func ExpandEnvVars(input string) (string, error) {
	return expand(input, os.LookupEnv)
}

func expand(input string, lookup func(string) (string, bool)) (string, error) {
	spans := reference.FindAllStringSubmatchIndex(input, -1)
	if len(spans) == 0 {
		return input, nil
	}

	var (
		b    strings.Builder
		errs []error
		last int
	)
	b.Grow(len(input))
	for _, s := range spans {
		b.WriteString(input[last:s[0]])
		last = s[1]

		name := input[s[2]:s[3]]
		if value, ok := lookup(name); ok {
			b.WriteString(value)
			continue
		}
		if s[4] >= 0 {
			b.WriteString(input[s[4]:s[5]])
			continue
		}
		b.WriteString(input[s[0]:s[1]])
		errs = append(errs, fmt.Errorf("%w: %s", ErrUndefined, name))
	}
	b.WriteString(input[last:])

	return b.String(), errors.Join(errs...)
}
