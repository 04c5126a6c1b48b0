package dsl

import (
	"errors"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Mapped projects an object converter through a key table mapping external
// wire keys to the internal keys the inner converter understands. Only keys
// named in the table survive the projection.
func Mapped(inner wireconv.Converter[map[string]any], keyTable map[string]string) wireconv.Converter[map[string]any] {
	return mappedConverter{inner: inner, keyTable: keyTable}
}

type mappedConverter struct {
	inner    wireconv.Converter[map[string]any]
	keyTable map[string]string // external key -> internal key
}

func (m mappedConverter) Serialize(v map[string]any) any {
	ser, _ := m.inner.Serialize(v).(map[string]any)
	out := make(map[string]any, len(m.keyTable))
	for ext, in := range m.keyTable {
		if sv, ok := ser[in]; ok {
			out[ext] = sv
		}
	}
	return out
}

func (m mappedConverter) Deserialize(input any) mo.Result[map[string]any] {
	src, ok := input.(map[string]any)
	if !ok {
		return mo.Err[map[string]any](errors.New("Expected object for mapped type"))
	}
	internal := make(map[string]any, len(m.keyTable))
	for ext, in := range m.keyTable {
		if v, present := src[ext]; present {
			internal[in] = v
		}
	}
	return m.inner.Deserialize(internal)
}

// Rename rewrites a subset of an object converter's wire keys. fieldMapping
// maps original field names to their renamed wire keys; fields absent from
// the mapping keep their original keys in both directions.
func Rename(inner wireconv.Converter[map[string]any], fieldMapping map[string]string) wireconv.Converter[map[string]any] {
	reverse := make(map[string]string, len(fieldMapping))
	for orig, renamed := range fieldMapping {
		reverse[renamed] = orig
	}
	return renameConverter{inner: inner, forward: fieldMapping, reverse: reverse}
}

type renameConverter struct {
	inner   wireconv.Converter[map[string]any]
	forward map[string]string // original key -> renamed key
	reverse map[string]string // renamed key -> original key
}

func (r renameConverter) Serialize(v map[string]any) any {
	ser, _ := r.inner.Serialize(v).(map[string]any)
	out := make(map[string]any, len(ser))
	for k, sv := range ser {
		if renamed, ok := r.forward[k]; ok {
			k = renamed
		}
		out[k] = sv
	}
	return out
}

func (r renameConverter) Deserialize(input any) mo.Result[map[string]any] {
	src, ok := input.(map[string]any)
	if !ok {
		return mo.Err[map[string]any](errors.New("Expected object for renamed type"))
	}
	restored := make(map[string]any, len(src))
	for k, v := range src {
		if orig, ok := r.reverse[k]; ok {
			k = orig
		}
		restored[k] = v
	}
	return r.inner.Deserialize(restored)
}
