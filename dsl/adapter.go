package dsl

import (
	"reflect"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// AnyConverter adapts a strongly typed Converter[T] to an any-typed wrapper so
// heterogeneous field and tuple tables can hold converters of differing domain
// types. It implements wireconv.Converter[any].
type AnyConverter struct {
	serialize   func(any) any
	deserialize func(any) mo.Result[any]
}

// Of erases a strongly typed converter for use in Object fields and Tuples.
//
// Serialization passes the Undefined sentinel through untouched so Optional
// fields compose; a well-typed value is asserted back to T, with numeric
// values widened when the kinds allow it.
func Of[T any](c wireconv.Converter[T]) AnyConverter {
	return AnyConverter{
		serialize: func(v any) any {
			if wireconv.IsUndefined(v) {
				return wireconv.Undefined
			}
			if tv, ok := v.(T); ok {
				return c.Serialize(tv)
			}
			var zero T
			if v == nil {
				return c.Serialize(zero)
			}
			if tv, ok := convertNumeric[T](v); ok {
				return c.Serialize(tv)
			}
			return c.Serialize(zero)
		},
		deserialize: func(input any) mo.Result[any] {
			res := c.Deserialize(input)
			if res.IsError() {
				return mo.Err[any](res.Error())
			}
			return mo.Ok[any](res.MustGet())
		},
	}
}

// Serialize applies the erased serializer.
func (a AnyConverter) Serialize(v any) any { return a.serialize(v) }

// Deserialize applies the erased deserializer.
func (a AnyConverter) Deserialize(input any) mo.Result[any] { return a.deserialize(input) }

// convertNumeric widens v into T when both sides are numeric kinds, so domain
// maps holding untyped int literals serialize through float64 converters.
func convertNumeric[T any](v any) (T, bool) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || !isNumericKind(rt.Kind()) {
		return zero, false
	}
	rv := reflect.ValueOf(v)
	if !isNumericKind(rv.Kind()) {
		return zero, false
	}
	return rv.Convert(rt).Interface().(T), true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
