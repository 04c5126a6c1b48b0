package dsl

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Union starts a tagged-variant converter over map[string]any objects. tagOf
// extracts the active variant's tag from a domain value during serialization;
// the tag field (default "type") discriminates during deserialization.
func Union(tagOf func(map[string]any) string) *UnionBuilder {
	return &UnionBuilder{
		tagOf:    tagOf,
		tagField: "type",
		variants: map[string]wireconv.Converter[map[string]any]{},
	}
}

// UnionBuilder accumulates the variant table for a union converter.
type UnionBuilder struct {
	tagOf    func(map[string]any) string
	tagField string
	variants map[string]wireconv.Converter[map[string]any]
}

// TagField overrides the discriminator key.
func (b *UnionBuilder) TagField(name string) *UnionBuilder {
	b.tagField = name
	return b
}

// Variant registers the converter handling the given tag.
func (b *UnionBuilder) Variant(tag string, conv wireconv.Converter[map[string]any]) *UnionBuilder {
	b.variants[tag] = conv
	return b
}

// Build finalizes the union converter.
func (b *UnionBuilder) Build() wireconv.Converter[map[string]any] {
	variants := make(map[string]wireconv.Converter[map[string]any], len(b.variants))
	for k, v := range b.variants {
		variants[k] = v
	}
	return unionConverter{tagOf: b.tagOf, tagField: b.tagField, variants: variants}
}

type unionConverter struct {
	tagOf    func(map[string]any) string
	tagField string
	variants map[string]wireconv.Converter[map[string]any]
}

// Serialize writes the tag field first and spreads the variant payload after
// it, so a payload field sharing the tag key overwrites the tag. A tag with
// no registered variant is a caller bug and panics.
func (u unionConverter) Serialize(v map[string]any) any {
	tag := u.tagOf(v)
	conv, ok := u.variants[tag]
	if !ok {
		panic(fmt.Sprintf("wireconv: no union variant registered for tag %q", tag))
	}
	out := map[string]any{u.tagField: tag}
	if payload, ok := conv.Serialize(v).(map[string]any); ok {
		for k, pv := range payload {
			out[k] = pv
		}
	}
	return out
}

// Deserialize dispatches on the tag field and delegates the entire input
// object, tag field included, to the variant converter.
func (u unionConverter) Deserialize(input any) mo.Result[map[string]any] {
	m, ok := input.(map[string]any)
	if !ok {
		return mo.Err[map[string]any](errors.New("Expected object for union"))
	}
	tv, present := m[u.tagField]
	tag, _ := tv.(string)
	conv, ok := u.variants[tag]
	if !ok {
		rendered := wireconv.FormatAtom(tv)
		if !present {
			rendered = "undefined"
		}
		return mo.Err[map[string]any](fmt.Errorf("Unknown union variant: %s", rendered))
	}
	return conv.Deserialize(m)
}
