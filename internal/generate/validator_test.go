package generate

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/atlanticdynamic/actorspec/internal/document"
	"github.com/atlanticdynamic/actorspec/internal/errz"
	"github.com/atlanticdynamic/actorspec/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// objectOf builds a decoded object from alternating keys and values.
func objectOf(kv ...any) *document.Object {
	obj := document.NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		obj.Set(kv[i].(string), kv[i+1])
	}
	return obj
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	one := 1
	zero := 0
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "nil", in: nil, want: false},
		{name: "false", in: false, want: false},
		{name: "true", in: true, want: true},
		{name: "empty string", in: "", want: false},
		{name: "string", in: "1", want: true},
		{name: "zero int", in: 0, want: false},
		{name: "int", in: 1, want: true},
		{name: "zero int64", in: int64(0), want: false},
		{name: "uint", in: uint8(2), want: true},
		{name: "zero float", in: 0.0, want: false},
		{name: "float", in: 1.5, want: true},
		{name: "NaN", in: math.NaN(), want: false},
		{name: "zero json number", in: json.Number("0"), want: false},
		{name: "json number", in: json.Number("1"), want: true},
		{name: "pointer to one", in: &one, want: true},
		{name: "pointer to zero", in: &zero, want: false},
		{name: "nil pointer", in: (*int)(nil), want: false},
		{name: "object", in: map[string]any{}, want: true},
		{name: "array", in: []any{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy(tt.in))
		})
	}
}

func TestVersionValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     any
		wantErr error
	}{
		{name: "map with version", doc: map[string]any{"actorspecVersion": 1}},
		{name: "json number version", doc: map[string]any{"actorspecVersion": json.Number("2")}},
		{name: "struct with version", doc: &schema.ActorSpec{ActorSpecVersion: 1}},
		{name: "missing", doc: map[string]any{"actor": map[string]any{"title": "Demo"}}, wantErr: ErrVersionAbsent},
		{name: "zero", doc: map[string]any{"actorspecVersion": 0}, wantErr: ErrVersionFalsy},
		{name: "null", doc: map[string]any{"actorspecVersion": nil}, wantErr: ErrVersionFalsy},
		{name: "false", doc: map[string]any{"actorspecVersion": false}, wantErr: ErrVersionFalsy},
		{name: "empty string", doc: map[string]any{"actorspecVersion": ""}, wantErr: ErrVersionFalsy},
		{name: "zero struct", doc: &schema.ActorSpec{}, wantErr: ErrVersionFalsy},
		{name: "decoded object", doc: objectOf("actor", objectOf("title", "Demo"), "actorspecVersion", json.Number("1"))},
		{name: "decoded object without version", doc: objectOf("actor", objectOf()), wantErr: ErrVersionAbsent},
		{name: "map is read without encoding", doc: map[string]any{"actorspecVersion": 1, "fn": func() {}}},
		{name: "unserializable struct", doc: struct{ Fn func() }{}, wantErr: ErrNotSerializable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VersionValidator{}.Validate(tt.doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func loadScraperFixture(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile("../schema/testdata/scraper.json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestSchemaValidator(t *testing.T) {
	t.Parallel()

	t.Run("valid scraper spec", func(t *testing.T) {
		assert.NoError(t, SchemaValidator{}.Validate(loadScraperFixture(t)))
	})

	t.Run("valid typed spec", func(t *testing.T) {
		spec, err := schema.Decode(loadScraperFixture(t))
		require.NoError(t, err)
		assert.NoError(t, SchemaValidator{}.Validate(spec))
	})

	t.Run("unknown filterCompleteness", func(t *testing.T) {
		doc := loadScraperFixture(t)
		ds := doc["datasets"].([]any)[0].(map[string]any)
		ds["filterCompleteness"] = "partial"

		err := SchemaValidator{}.Validate(doc)
		require.ErrorIs(t, err, errz.ErrSchemaViolation)
		assert.Equal(t, errz.ErrSchemaViolation, validationKind(err))
	})

	t.Run("missing nested field", func(t *testing.T) {
		doc := loadScraperFixture(t)
		delete(doc, "pricing")
		assert.ErrorIs(t, SchemaValidator{}.Validate(doc), errz.ErrSchemaViolation)
	})

	t.Run("two default datasets", func(t *testing.T) {
		doc := loadScraperFixture(t)
		datasets := doc["datasets"].([]any)
		first := datasets[0].(map[string]any)
		clone := make(map[string]any, len(first))
		for k, v := range first {
			clone[k] = v
		}
		clone["name"] = "Copy"
		doc["datasets"] = append(datasets, clone)

		err := SchemaValidator{}.Validate(doc)
		require.ErrorIs(t, err, errz.ErrSchemaViolation)
		assert.ErrorIs(t, err, schema.ErrMultipleDefaults)
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first")
	calls := 0
	counting := ValidatorFunc(func(any) error {
		calls++
		return nil
	})
	failing := ValidatorFunc(func(any) error { return errFirst })

	assert.NoError(t, Chain(counting, counting).Validate(nil))
	assert.Equal(t, 2, calls)

	assert.ErrorIs(t, Chain(failing, counting).Validate(nil), errFirst)
	assert.Equal(t, 2, calls)

	err := Strict().Validate(map[string]any{"actor": map[string]any{}})
	require.ErrorIs(t, err, ErrVersionAbsent)
	assert.Equal(t, errz.ErrMissingVersion, validationKind(err))
}
