package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrTrailingData is returned when a JSON document is followed by more input.
var ErrTrailingData = errors.New("trailing data after document")

// DecodeJSON decodes a single JSON value. Objects become *Object and arrays []any; numbers stay
// json.Number so integers round-trip unchanged. Empty input returns io.EOF.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	v, err := decodeToken(dec, tok)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// Normalize converts any JSON-serializable value into the tree DecodeJSON produces. Struct fields
// keep their declaration order; Go map keys come out sorted since maps carry no order.
func Normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(raw)
}

func decodeToken(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			kt, err := nextToken(dec)
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not string", kt)
			}
			vt, err := nextToken(dec)
			if err != nil {
				return nil, err
			}
			v, err := decodeToken(dec, vt)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, closeDelim(dec, '}')

	case '[':
		arr := []any{}
		for dec.More() {
			vt, err := nextToken(dec)
			if err != nil {
				return nil, err
			}
			v, err := decodeToken(dec, vt)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, closeDelim(dec, ']')

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

// nextToken reads a token inside a container, where running out of input is never clean.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func closeDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := nextToken(dec)
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	if k.Kind != yaml.ScalarNode || k.Value != "<<" {
		return false
	}
	switch k.Tag {
	case "", "!", "!!merge", "tag:yaml.org,2002:merge":
		return true
	}
	return false
}

// FromYAML decodes a YAML document. Mappings become *Object in source order; merge keys splice
// the merged entries in at their position, with explicit keys taking precedence. Empty input
// returns nil.
func FromYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}
	return fromNode(&root)
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case yaml.MappingNode:
		obj := NewObject()
		if err := fillMapping(obj, n); err != nil {
			return nil, err
		}
		return obj, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func fillMapping(obj *Object, n *yaml.Node) error {
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, val := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			if err := merge(obj, val, explicit); err != nil {
				return err
			}
			continue
		}
		v, err := fromNode(val)
		if err != nil {
			return err
		}
		obj.Set(k.Value, v)
	}
	return nil
}

// merge copies the entries of a merged mapping (or sequence of mappings) into obj. Keys already
// present or set explicitly later in the mapping are skipped.
func merge(obj *Object, n *yaml.Node, explicit map[string]bool) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		src := NewObject()
		if err := fillMapping(src, n); err != nil {
			return err
		}
		for k, v := range src.All() {
			if explicit[k] || obj.Has(k) {
				continue
			}
			obj.Set(k, v)
		}
		return nil

	case yaml.SequenceNode:
		for _, c := range n.Content {
			if err := merge(obj, c, explicit); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("line %d: merge value must be a mapping", n.Line)
	}
}
