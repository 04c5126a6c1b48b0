// Package json bridges encoded JSON payloads and wireconv wire values using
// goccy/go-json.
package json

import (
	"errors"

	gojson "github.com/goccy/go-json"
	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Decode parses data into wire values: objects become map[string]any, arrays
// []any, and numbers float64.
func Decode(data []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode renders a wire value as JSON. Undefined object members are dropped
// and Undefined array items become null, matching how absent values disappear
// from encoded objects. A top-level Undefined has no JSON rendering.
func Encode(v any) ([]byte, error) {
	if wireconv.IsUndefined(v) {
		return nil, errors.New("json: cannot encode undefined")
	}
	return gojson.Marshal(wireconv.DropUndefined(v))
}

// Deserialize decodes data and runs the wire value through c.
func Deserialize[T any](c wireconv.Converter[T], data []byte) mo.Result[T] {
	v, err := Decode(data)
	if err != nil {
		return mo.Err[T](err)
	}
	return c.Deserialize(v)
}

// Serialize renders c's wire form of v as JSON.
func Serialize[T any](c wireconv.Converter[T], v T) ([]byte, error) {
	return Encode(c.Serialize(v))
}
