package dsl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Record returns a converter for homogeneous string-keyed mappings; every
// entry value runs through the same converter.
func Record[V any](value wireconv.Converter[V]) wireconv.Converter[map[string]V] {
	return recordConverter[V]{value: value}
}

type recordConverter[V any] struct {
	value wireconv.Converter[V]
}

func (r recordConverter[V]) Serialize(v map[string]V) any {
	out := make(map[string]any, len(v))
	for k, vv := range v {
		out[k] = r.value.Serialize(vv)
	}
	return out
}

func (r recordConverter[V]) Deserialize(input any) mo.Result[map[string]V] {
	var src map[string]any
	switch m := input.(type) {
	case map[string]any:
		src = m
	case map[string]V:
		src = make(map[string]any, len(m))
		for k, vv := range m {
			src[k] = vv
		}
	default:
		return mo.Err[map[string]V](errors.New("Expected object for record"))
	}
	// Keys are visited in sorted order so the short-circuited failure is
	// deterministic across map iteration orders.
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]V, len(src))
	for _, k := range keys {
		res := r.value.Deserialize(src[k])
		if res.IsError() {
			return mo.Err[map[string]V](fmt.Errorf("Record key '%s': %s", k, res.Error().Error()))
		}
		out[k] = res.MustGet()
	}
	return mo.Ok(out)
}
