// Package yaml bridges YAML documents and wireconv wire values using
// gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
	yamlv3 "gopkg.in/yaml.v3"

	wireconv "github.com/wireconv/wireconv"
)

// Decode parses a YAML document into wire values. yaml.v3 produces Go ints
// for integer scalars; those are widened to float64 so number converters see
// a single numeric type. Mappings must be string-keyed.
func Decode(data []byte) (any, error) {
	var v any
	if err := yamlv3.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v)
}

// Encode renders a wire value as YAML. Undefined mapping members are dropped
// and Undefined sequence items become null.
func Encode(v any) ([]byte, error) {
	if wireconv.IsUndefined(v) {
		return nil, errors.New("yaml: cannot encode undefined")
	}
	return yamlv3.Marshal(wireconv.DropUndefined(v))
}

// Deserialize decodes data and runs the wire value through c.
func Deserialize[T any](c wireconv.Converter[T], data []byte) mo.Result[T] {
	v, err := Decode(data)
	if err != nil {
		return mo.Err[T](err)
	}
	return c.Deserialize(v)
}

// Serialize renders c's wire form of v as YAML.
func Serialize[T any](c wireconv.Converter[T], v T) ([]byte, error) {
	return Encode(c.Serialize(v))
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			nv, err := normalize(mv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: unsupported non-string mapping key %v", k)
			}
			nv, err := normalize(mv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float32:
		return float64(t), nil
	default:
		return v, nil
	}
}
