package schema

import "fmt"

// FilterCompleteness describes how fully a dataset exposes the filters available on the source site.
type FilterCompleteness string

const (
	FilterCompletenessNone  FilterCompleteness = "none"
	FilterCompletenessSome  FilterCompleteness = "some"
	FilterCompletenessFull  FilterCompleteness = "full"
	FilterCompletenessExtra FilterCompleteness = "extra"
)

// FilterCompletenessValues lists every valid FilterCompleteness in ascending order of coverage.
var FilterCompletenessValues = []FilterCompleteness{
	FilterCompletenessNone,
	FilterCompletenessSome,
	FilterCompletenessFull,
	FilterCompletenessExtra,
}

// Validate checks that f is one of FilterCompletenessValues.
func (f FilterCompleteness) Validate() error {
	for _, v := range FilterCompletenessValues {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidFilterCompleteness, string(f))
}
