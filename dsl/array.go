package dsl

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Array returns a converter for homogeneous sequences of elem. Order and
// length are preserved in both directions.
func Array[E any](elem wireconv.Converter[E]) wireconv.Converter[[]E] {
	return arrayConverter[E]{elem: elem}
}

type arrayConverter[E any] struct {
	elem wireconv.Converter[E]
}

func (a arrayConverter[E]) Serialize(v []E) any {
	out := make([]any, len(v))
	for i := range v {
		out[i] = a.elem.Serialize(v[i])
	}
	return out
}

func (a arrayConverter[E]) Deserialize(input any) mo.Result[[]E] {
	var items []any
	switch src := input.(type) {
	case []any:
		items = src
	case []E:
		items = make([]any, len(src))
		for i := range src {
			items[i] = src[i]
		}
	default:
		return mo.Err[[]E](errors.New("Expected array"))
	}
	out := make([]E, 0, len(items))
	for i, it := range items {
		res := a.elem.Deserialize(it)
		if res.IsError() {
			return mo.Err[[]E](fmt.Errorf("Array item at index %d: %s", i, res.Error().Error()))
		}
		out = append(out, res.MustGet())
	}
	return mo.Ok(out)
}

// Tuple returns a converter for fixed-length heterogeneous sequences; each
// position has its own converter.
func Tuple(items ...AnyConverter) wireconv.Converter[[]any] {
	return tupleConverter{items: items}
}

type tupleConverter struct {
	items []AnyConverter
}

func (t tupleConverter) Serialize(v []any) any {
	out := make([]any, len(t.items))
	for i, c := range t.items {
		var el any = wireconv.Undefined
		if i < len(v) {
			el = v[i]
		}
		out[i] = c.Serialize(el)
	}
	return out
}

func (t tupleConverter) Deserialize(input any) mo.Result[[]any] {
	items, ok := input.([]any)
	if !ok {
		return mo.Err[[]any](errors.New("Expected array for tuple"))
	}
	if len(items) != len(t.items) {
		return mo.Err[[]any](fmt.Errorf("Expected tuple of length %d, got %d", len(t.items), len(items)))
	}
	out := make([]any, len(items))
	for i, c := range t.items {
		res := c.Deserialize(items[i])
		if res.IsError() {
			return mo.Err[[]any](fmt.Errorf("Tuple item at index %d: %s", i, res.Error().Error()))
		}
		out[i] = res.MustGet()
	}
	return mo.Ok(out)
}
