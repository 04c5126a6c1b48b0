package dsl

import (
	"sync"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Optional wraps inner so absence passes through untouched in both directions.
// A nil pointer stands for the absent value on the domain side and the
// Undefined sentinel stands for it on the wire; anything else delegates to
// inner.
func Optional[T any](inner wireconv.Converter[T]) wireconv.Converter[*T] {
	return optionalConverter[T]{inner: inner}
}

type optionalConverter[T any] struct {
	inner wireconv.Converter[T]
}

func (o optionalConverter[T]) Serialize(v *T) any {
	if v == nil {
		return wireconv.Undefined
	}
	return o.inner.Serialize(*v)
}

func (o optionalConverter[T]) Deserialize(input any) mo.Result[*T] {
	if wireconv.IsUndefined(input) {
		return mo.Ok[*T](nil)
	}
	res := o.inner.Deserialize(input)
	if res.IsError() {
		return mo.Err[*T](res.Error())
	}
	v := res.MustGet()
	return mo.Ok(&v)
}

// Nullable mirrors Optional with wire null (nil) instead of Undefined.
func Nullable[T any](inner wireconv.Converter[T]) wireconv.Converter[*T] {
	return nullableConverter[T]{inner: inner}
}

type nullableConverter[T any] struct {
	inner wireconv.Converter[T]
}

func (n nullableConverter[T]) Serialize(v *T) any {
	if v == nil {
		return nil
	}
	return n.inner.Serialize(*v)
}

func (n nullableConverter[T]) Deserialize(input any) mo.Result[*T] {
	if input == nil {
		return mo.Ok[*T](nil)
	}
	res := n.inner.Deserialize(input)
	if res.IsError() {
		return mo.Err[*T](res.Error())
	}
	v := res.MustGet()
	return mo.Ok(&v)
}

// WithDefault substitutes def when deserializing an absent input. The default
// is returned as-is, without running it back through inner. Serialization
// always delegates.
func WithDefault[T any](inner wireconv.Converter[T], def T) wireconv.Converter[T] {
	return defaultConverter[T]{inner: inner, def: def}
}

type defaultConverter[T any] struct {
	inner wireconv.Converter[T]
	def   T
}

func (d defaultConverter[T]) Serialize(v T) any { return d.inner.Serialize(v) }

func (d defaultConverter[T]) Deserialize(input any) mo.Result[T] {
	if wireconv.IsUndefined(input) {
		return mo.Ok(d.def)
	}
	return d.inner.Deserialize(input)
}

// Lazy defers converter construction until first use so self-referential and
// mutually referential shapes can be declared before every converter exists.
// The factory runs exactly once, also under concurrent first use, and its
// result is memoized for every later call.
func Lazy[T any](factory func() wireconv.Converter[T]) wireconv.Converter[T] {
	return &lazyConverter[T]{factory: factory}
}

type lazyConverter[T any] struct {
	once     sync.Once
	factory  func() wireconv.Converter[T]
	resolved wireconv.Converter[T]
}

func (l *lazyConverter[T]) resolve() wireconv.Converter[T] {
	l.once.Do(func() {
		l.resolved = l.factory()
		l.factory = nil
	})
	return l.resolved
}

func (l *lazyConverter[T]) Serialize(v T) any { return l.resolve().Serialize(v) }

func (l *lazyConverter[T]) Deserialize(input any) mo.Result[T] {
	return l.resolve().Deserialize(input)
}
