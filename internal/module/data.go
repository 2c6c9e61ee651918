package module

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/document"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// loadJSON decodes a JSON module. Objects keep their key order and numbers stay json.Number so
// integers round-trip unchanged.
func loadJSON(_ context.Context, path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v, err := document.DecodeJSON(data)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return v, nil
}

func loadTOML(_ context.Context, path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if v == nil {
		v = map[string]any{}
	}

	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return reorder(v, "", order), nil
}

func loadYAML(_ context.Context, path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v, err := document.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return v, nil
}

// keySep joins the segments of a dotted key path.
const keySep = "\x00"

// tomlKeyOrder records the position at which every key path first appears in the source. Array
// elements share the path of their array.
func tomlKeyOrder(data []byte) (map[string]int, error) {
	order := make(map[string]int)
	seen := func(segments []string) {
		for i := range segments {
			k := strings.Join(segments[:i+1], keySep)
			if _, ok := order[k]; !ok {
				order[k] = len(order)
			}
		}
	}

	var walk func(n *unstable.Node, path []string)
	walk = func(n *unstable.Node, path []string) {
		switch n.Kind {
		case unstable.InlineTable:
			it := n.Children()
			for it.Next() {
				kv := it.Node()
				if kv.Kind != unstable.KeyValue {
					continue
				}
				p := append(slices.Clip(path), keySegments(kv.Key())...)
				seen(p)
				walk(kv.Value(), p)
			}
		case unstable.Array:
			it := n.Children()
			for it.Next() {
				walk(it.Node(), path)
			}
		}
	}

	var p unstable.Parser
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keySegments(e.Key())
			seen(table)
		case unstable.KeyValue:
			path := append(slices.Clip(table), keySegments(e.Key())...)
			seen(path)
			walk(e.Value(), path)
		}
	}
	return order, p.Error()
}

func keySegments(it unstable.Iterator) []string {
	var out []string
	for it.Next() {
		out = append(out, string(it.Node().Data))
	}
	return out
}

// reorder converts decoded TOML tables into document objects ordered by first appearance. Keys
// with no recorded position go last, sorted.
func reorder(v any, path string, order map[string]int) any {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		pos := func(k string) (int, bool) {
			i, ok := order[joinPath(path, k)]
			return i, ok
		}
		slices.SortFunc(keys, func(a, b string) int {
			ia, oka := pos(a)
			ib, okb := pos(b)
			switch {
			case oka && okb:
				return cmp.Compare(ia, ib)
			case oka:
				return -1
			case okb:
				return 1
			default:
				return strings.Compare(a, b)
			}
		})

		obj := document.NewObject()
		for _, k := range keys {
			obj.Set(k, reorder(x[k], joinPath(path, k), order))
		}
		return obj

	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = reorder(elem, path, order)
		}
		return out

	default:
		return v
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + keySep + key
}
