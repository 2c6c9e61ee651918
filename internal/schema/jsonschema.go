package schema

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

var buildSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[ScraperActorSpec](&jsonschema.ForOptions{IgnoreInvalidTypes: true})
	if err != nil {
		return nil, fmt.Errorf("failed to infer ActorSpec schema: %w", err)
	}
	if err := refine(s); err != nil {
		return nil, err
	}
	return s, nil
})

var resolveSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := buildSchema()
	if err != nil {
		return nil, err
	}
	return s.Resolve(nil)
})

// JSONSchema returns the JSON Schema for ScraperActorSpec. A plain ActorSpec validates against it
// when it carries an empty datasets list.
func JSONSchema() (*jsonschema.Schema, error) {
	return buildSchema()
}

// ValidateDocument checks a generic JSON document (maps, slices, float64, string, bool, nil)
// against JSONSchema.
func ValidateDocument(doc any) error {
	rs, err := resolveSchema()
	if err != nil {
		return err
	}
	return rs.Validate(doc)
}

// refine adds the constraints that cannot be inferred from Go types.
func refine(root *jsonschema.Schema) error {
	root.Title = "ScraperActorSpec"

	version, err := property(root, VersionField)
	if err != nil {
		return err
	}
	version.Minimum = ptr(1.0)

	for _, path := range [][]string{
		{"pricing", "value"},
		{"pricing", "period"},
		{"datasets", "size"},
		{"datasets", "perfStats", "costUsd"},
		{"datasets", "perfStats", "timeSec"},
	} {
		p, err := property(root, path...)
		if err != nil {
			return err
		}
		p.Minimum = ptr(0.0)
	}

	fc, err := property(root, "datasets", "filterCompleteness")
	if err != nil {
		return err
	}
	fc.Enum = make([]any, 0, len(FilterCompletenessValues))
	for _, v := range FilterCompletenessValues {
		fc.Enum = append(fc.Enum, string(v))
	}

	perf, err := property(root, "datasets", "perfStats")
	if err != nil {
		return err
	}
	perf.Properties["count"] = &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "number", Minimum: ptr(0.0)},
			{Type: "string", Enum: []any{CountAll}},
		},
	}

	return nil
}

// property walks object properties, stepping through array items transparently.
func property(s *jsonschema.Schema, path ...string) (*jsonschema.Schema, error) {
	cur := s
	for _, name := range path {
		if cur.Items != nil {
			cur = cur.Items
		}
		next, ok := cur.Properties[name]
		if !ok || next == nil {
			return nil, fmt.Errorf("schema has no property %q", name)
		}
		cur = next
	}
	if cur.Items != nil && cur.Properties == nil {
		return cur.Items, nil
	}
	return cur, nil
}

func ptr[T any](v T) *T {
	return &v
}
