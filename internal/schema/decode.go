package schema

import (
	"encoding/json"
	"fmt"
)

// Decode converts a generic document, or any value that marshals to a JSON object, into a
// ScraperActorSpec. Unknown fields are ignored.
func Decode(doc any) (*ScraperActorSpec, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	spec := &ScraperActorSpec{}
	if err := json.Unmarshal(raw, spec); err != nil {
		return nil, fmt.Errorf("failed to decode ActorSpec: %w", err)
	}
	return spec, nil
}
