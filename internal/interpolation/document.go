package interpolation

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/atlanticdynamic/actorspec/internal/document"
)

// InterpolateDocument returns a copy of doc with every string value expanded by ExpandEnvVars.
// Keys are left alone and objects keep their key order. doc is expected to be a generic JSON-like
// tree of *document.Object, map[string]any and []any; other leaf types are returned unchanged.
func InterpolateDocument(doc any) (any, error) {
	return walk(doc, "", os.LookupEnv)
}

func walk(v any, path string, lookup func(string) (string, bool)) (any, error) {
	switch val := v.(type) {
	case string:
		out, err := expand(val, lookup)
		if err != nil {
			return val, fmt.Errorf("%s: %w", displayPath(path), err)
		}
		return out, nil

	case *document.Object:
		out := document.NewObject()
		var errs []error
		for k, child := range val.All() {
			res, err := walk(child, joinKey(path, k), lookup)
			if err != nil {
				errs = append(errs, err)
			}
			out.Set(k, res)
		}
		return out, errors.Join(errs...)

	case map[string]any:
		out := make(map[string]any, len(val))
		var errs []error
		for k, child := range val {
			res, err := walk(child, joinKey(path, k), lookup)
			if err != nil {
				errs = append(errs, err)
			}
			out[k] = res
		}
		return out, errors.Join(errs...)

	case []any:
		out := make([]any, len(val))
		var errs []error
		for i, child := range val {
			res, err := walk(child, path+"["+strconv.Itoa(i)+"]", lookup)
			if err != nil {
				errs = append(errs, err)
			}
			out[i] = res
		}
		return out, errors.Join(errs...)

	default:
		return v, nil
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
