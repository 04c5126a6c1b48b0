package dsl

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// fieldEntry pairs a field name with its erased converter. Declaration order
// is preserved: it governs serialization output and the short-circuit order of
// deserialization failures.
type fieldEntry struct {
	name string
	conv AnyConverter
}

// ObjectBuilder accumulates named field converters in declaration order.
type ObjectBuilder struct {
	fields []fieldEntry
}

// Object starts an object converter definition.
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field registers a field converter. Registering a name twice replaces the
// earlier converter while keeping its original position.
func (b *ObjectBuilder) Field(name string, conv AnyConverter) *ObjectBuilder {
	for i := range b.fields {
		if b.fields[i].name == name {
			b.fields[i].conv = conv
			return b
		}
	}
	b.fields = append(b.fields, fieldEntry{name: name, conv: conv})
	return b
}

// Build finalizes the object converter. The builder can keep being mutated
// afterwards without affecting converters already built.
func (b *ObjectBuilder) Build() wireconv.Converter[map[string]any] {
	fields := make([]fieldEntry, len(b.fields))
	copy(fields, b.fields)
	return objectConverter{fields: fields}
}

type objectConverter struct {
	fields []fieldEntry
}

func (o objectConverter) Serialize(v map[string]any) any {
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		fv, ok := v[f.name]
		if !ok {
			fv = wireconv.Undefined
		}
		sv := f.conv.Serialize(fv)
		if wireconv.IsUndefined(sv) {
			continue
		}
		out[f.name] = sv
	}
	return out
}

func (o objectConverter) Deserialize(input any) mo.Result[map[string]any] {
	m, ok := input.(map[string]any)
	if !ok {
		return mo.Err[map[string]any](errors.New("Expected object"))
	}
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		fv, present := m[f.name]
		if !present {
			fv = wireconv.Undefined
		}
		res := f.conv.Deserialize(fv)
		if res.IsError() {
			return mo.Err[map[string]any](fmt.Errorf("Field '%s': %s", f.name, res.Error().Error()))
		}
		out[f.name] = res.MustGet()
	}
	return mo.Ok(out)
}
