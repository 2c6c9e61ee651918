package document

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("zeta", 1)
	obj.Set("alpha", 2)
	obj.Set("zeta", 3)

	assert.Equal(t, []string{"zeta", "alpha"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	v, ok := obj.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.False(t, obj.Has("missing"))

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":3,"alpha":2}`, string(data))

	t.Run("nil object", func(t *testing.T) {
		var nilObj *Object
		assert.Zero(t, nilObj.Len())
		assert.Nil(t, nilObj.Keys())
		data, err := json.Marshal(nilObj)
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("zero value", func(t *testing.T) {
		var zero Object
		zero.Set("a", true)
		assert.Equal(t, []string{"a"}, zero.Keys())
	})
}

func TestDecodeJSONKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	const src = `{"actorspecVersion":1,"actor":{"title":"Demo","shortDesc":"x"},"zeta":1,"alpha":2}`

	doc, err := DecodeJSON([]byte(src))
	require.NoError(t, err)

	obj, ok := doc.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"actorspecVersion", "actor", "zeta", "alpha"}, obj.Keys())

	version, _ := obj.Get("actorspecVersion")
	assert.Equal(t, json.Number("1"), version)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))

	indented, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, `{
  "actorspecVersion": 1,
  "actor": {
    "title": "Demo",
    "shortDesc": "x"
  },
  "zeta": 1,
  "alpha": 2
}`, string(indented))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("arrays and scalars", func(t *testing.T) {
		doc, err := DecodeJSON([]byte(`[{"b":null,"a":[true,"s",1.5]},[]]`))
		require.NoError(t, err)
		out, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Equal(t, `[{"b":null,"a":[true,"s",1.5]},[]]`, string(out))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeJSON([]byte("  \n"))
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`{"a":1} {"b":2}`))
		require.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`{"a":[1,2`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, io.EOF)
	})

	t.Run("duplicate key keeps first position", func(t *testing.T) {
		doc, err := DecodeJSON([]byte(`{"a":1,"b":2,"a":3}`))
		require.NoError(t, err)
		out, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"a":3,"b":2}`, string(out))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	type actor struct {
		Title string `json:"title"`
		Desc  string `json:"shortDesc,omitempty"`
	}
	type spec struct {
		Version int   `json:"actorspecVersion"`
		Actor   actor `json:"actor"`
	}

	doc, err := Normalize(spec{Version: 1, Actor: actor{Title: "Demo"}})
	require.NoError(t, err)
	obj, ok := doc.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"actorspecVersion", "actor"}, obj.Keys())

	t.Run("maps are sorted", func(t *testing.T) {
		doc, err := Normalize(map[string]any{"zeta": 1, "alpha": 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, doc.(*Object).Keys())
	})

	t.Run("unserializable", func(t *testing.T) {
		_, err := Normalize(map[string]any{"ch": make(chan int)})
		require.Error(t, err)
	})
}

func TestFromYAMLKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	const src = `
actorspecVersion: 1
actor:
  title: Demo
  shortDesc: x
zeta: 1
alpha: 2
`
	doc, err := FromYAML([]byte(src))
	require.NoError(t, err)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"actorspecVersion":1,"actor":{"title":"Demo","shortDesc":"x"},"zeta":1,"alpha":2}`, string(out))
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		doc, err := FromYAML(nil)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("anchors and merge keys", func(t *testing.T) {
		const src = `
base: &base
  memory: 256
  timeout: 60
run:
  name: fast
  <<: *base
  timeout: 30
list: [*base]
`
		doc, err := FromYAML([]byte(src))
		require.NoError(t, err)
		out, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Equal(t,
			`{"base":{"memory":256,"timeout":60},"run":{"name":"fast","memory":256,"timeout":30},"list":[{"memory":256,"timeout":60}]}`,
			string(out))
	})

	t.Run("merge sequence prefers earlier maps", func(t *testing.T) {
		const src = `
a: &a {x: 1}
b: &b {x: 2, y: 2}
c:
  <<: [*a, *b]
`
		doc, err := FromYAML([]byte(src))
		require.NoError(t, err)
		c, _ := doc.(*Object).Get("c")
		out, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `{"x":1,"y":2}`, string(out))
	})

	t.Run("invalid merge", func(t *testing.T) {
		_, err := FromYAML([]byte("a:\n  <<: 1\n"))
		require.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := FromYAML([]byte("a: [1, 2\n"))
		require.Error(t, err)
	})
}
