// Package must mirrors the dsl combinator names in the panicking calling
// convention: Deserialize returns the bare typed value and panics with
// *wireconv.DeserializeError on failure.
//
// Every combinator here is derived mechanically from its dsl counterpart
// through wireconv.Raise and wireconv.Recover, so the two namespaces can
// never diverge in success/failure determination or in error message text.
package must

import (
	"time"

	wireconv "github.com/wireconv/wireconv"
	"github.com/wireconv/wireconv/dsl"
)

// Of erases a panicking converter for use in Object fields and Tuples.
func Of[T any](rc wireconv.RaisingConverter[T]) dsl.AnyConverter {
	return dsl.Of(wireconv.Recover(rc))
}

// String mirrors dsl.String.
func String() wireconv.RaisingConverter[string] { return wireconv.Raise(dsl.String()) }

// Number mirrors dsl.Number.
func Number() wireconv.RaisingConverter[float64] { return wireconv.Raise(dsl.Number()) }

// Bool mirrors dsl.Bool.
func Bool() wireconv.RaisingConverter[bool] { return wireconv.Raise(dsl.Bool()) }

// Date mirrors dsl.Date.
func Date() wireconv.RaisingConverter[time.Time] { return wireconv.Raise(dsl.Date()) }

// Literal mirrors dsl.Literal.
func Literal[T comparable](value T) wireconv.RaisingConverter[T] {
	return wireconv.Raise(dsl.Literal(value))
}

// Enum mirrors dsl.Enum.
func Enum[T comparable](mapping map[string]T) wireconv.RaisingConverter[T] {
	return wireconv.Raise(dsl.Enum(mapping))
}

// Array mirrors dsl.Array.
func Array[E any](elem wireconv.RaisingConverter[E]) wireconv.RaisingConverter[[]E] {
	return wireconv.Raise(dsl.Array(wireconv.Recover(elem)))
}

// Tuple mirrors dsl.Tuple.
func Tuple(items ...dsl.AnyConverter) wireconv.RaisingConverter[[]any] {
	return wireconv.Raise(dsl.Tuple(items...))
}

// Record mirrors dsl.Record.
func Record[V any](value wireconv.RaisingConverter[V]) wireconv.RaisingConverter[map[string]V] {
	return wireconv.Raise(dsl.Record(wireconv.Recover(value)))
}

// Optional mirrors dsl.Optional.
func Optional[T any](inner wireconv.RaisingConverter[T]) wireconv.RaisingConverter[*T] {
	return wireconv.Raise(dsl.Optional(wireconv.Recover(inner)))
}

// Nullable mirrors dsl.Nullable.
func Nullable[T any](inner wireconv.RaisingConverter[T]) wireconv.RaisingConverter[*T] {
	return wireconv.Raise(dsl.Nullable(wireconv.Recover(inner)))
}

// WithDefault mirrors dsl.WithDefault.
func WithDefault[T any](inner wireconv.RaisingConverter[T], def T) wireconv.RaisingConverter[T] {
	return wireconv.Raise(dsl.WithDefault(wireconv.Recover(inner), def))
}

// Mapped mirrors dsl.Mapped.
func Mapped(inner wireconv.RaisingConverter[map[string]any], keyTable map[string]string) wireconv.RaisingConverter[map[string]any] {
	return wireconv.Raise(dsl.Mapped(wireconv.Recover(inner), keyTable))
}

// Rename mirrors dsl.Rename.
func Rename(inner wireconv.RaisingConverter[map[string]any], fieldMapping map[string]string) wireconv.RaisingConverter[map[string]any] {
	return wireconv.Raise(dsl.Rename(wireconv.Recover(inner), fieldMapping))
}

// Lazy mirrors dsl.Lazy. The factory still runs at most once.
func Lazy[T any](factory func() wireconv.RaisingConverter[T]) wireconv.RaisingConverter[T] {
	return wireconv.Raise(dsl.Lazy(func() wireconv.Converter[T] {
		return wireconv.Recover(factory())
	}))
}

// Bind mirrors dsl.Bind.
func Bind[T any](obj wireconv.RaisingConverter[map[string]any]) wireconv.RaisingConverter[T] {
	return wireconv.Raise(dsl.Bind[T](wireconv.Recover(obj)))
}

// ObjectBuilder accumulates named field converters in declaration order, like
// dsl.ObjectBuilder, finalizing into the panicking convention.
type ObjectBuilder struct {
	b *dsl.ObjectBuilder
}

// Object starts an object converter definition.
func Object() *ObjectBuilder { return &ObjectBuilder{b: dsl.Object()} }

// Field registers a field converter.
func (ob *ObjectBuilder) Field(name string, conv dsl.AnyConverter) *ObjectBuilder {
	ob.b.Field(name, conv)
	return ob
}

// Build finalizes the object converter.
func (ob *ObjectBuilder) Build() wireconv.RaisingConverter[map[string]any] {
	return wireconv.Raise(ob.b.Build())
}

// UnionBuilder accumulates the variant table for a union converter in the
// panicking convention.
type UnionBuilder struct {
	b *dsl.UnionBuilder
}

// Union starts a tagged-variant converter definition.
func Union(tagOf func(map[string]any) string) *UnionBuilder {
	return &UnionBuilder{b: dsl.Union(tagOf)}
}

// TagField overrides the discriminator key.
func (ub *UnionBuilder) TagField(name string) *UnionBuilder {
	ub.b.TagField(name)
	return ub
}

// Variant registers the converter handling the given tag.
func (ub *UnionBuilder) Variant(tag string, conv wireconv.RaisingConverter[map[string]any]) *UnionBuilder {
	ub.b.Variant(tag, wireconv.Recover(conv))
	return ub
}

// Build finalizes the union converter.
func (ub *UnionBuilder) Build() wireconv.RaisingConverter[map[string]any] {
	return wireconv.Raise(ub.b.Build())
}
