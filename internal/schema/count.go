package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CountAll is the literal used when a perf stat covers every available item.
const CountAll = "all"

// PerfCount is the number of items a perf stat was measured on, or "all".
type PerfCount struct {
	all bool
	n   float64
}

// Count returns a numeric PerfCount.
func Count(n float64) PerfCount {
	return PerfCount{n: n}
}

// AllItems returns the PerfCount encoded as "all".
func AllItems() PerfCount {
	return PerfCount{all: true}
}

// IsAll reports whether c is the "all" literal.
func (c PerfCount) IsAll() bool {
	return c.all
}

// Value returns the numeric count, zero when c is "all".
func (c PerfCount) Value() float64 {
	return c.n
}

func (c PerfCount) String() string {
	if c.all {
		return CountAll
	}
	return strconv.FormatFloat(c.n, 'f', -1, 64)
}

// MarshalJSON encodes c as a JSON number or the string "all".
func (c PerfCount) MarshalJSON() ([]byte, error) {
	if c.all {
		return json.Marshal(CountAll)
	}
	return json.Marshal(c.n)
}

// UnmarshalJSON accepts a JSON number or the string "all".
func (c *PerfCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != CountAll {
			return fmt.Errorf("%w: %q", ErrInvalidCount, s)
		}
		*c = AllItems()
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCount, data)
	}
	*c = Count(n)
	return nil
}
