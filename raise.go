package wireconv

import "github.com/samber/mo"

// DeserializeError carries a deserialization failure across the panicking
// calling convention. Its message is the fully prefixed error string produced
// by the result-returning core.
type DeserializeError struct {
	Message string
}

func (e *DeserializeError) Error() string { return e.Message }

// RaisingConverter is the panicking calling convention: Serialize returns the
// bare wire value and Deserialize returns the bare typed value, panicking
// with *DeserializeError on failure.
type RaisingConverter[T any] interface {
	Serialize(v T) any
	Deserialize(input any) T
}

// Raise derives the panicking convention from a result-returning converter.
// The two conventions agree exactly on success/failure determination and on
// error message text; only delivery differs.
func Raise[T any](c Converter[T]) RaisingConverter[T] { return raising[T]{c: c} }

type raising[T any] struct {
	c Converter[T]
}

func (r raising[T]) Serialize(v T) any { return r.c.Serialize(v) }

func (r raising[T]) Deserialize(input any) T {
	res := r.c.Deserialize(input)
	if res.IsError() {
		panic(&DeserializeError{Message: res.Error().Error()})
	}
	return res.MustGet()
}

// Recover derives the result-returning convention from a panicking converter
// by recovering *DeserializeError at the boundary. Panics of any other type
// propagate untouched.
func Recover[T any](rc RaisingConverter[T]) Converter[T] { return recovering[T]{rc: rc} }

type recovering[T any] struct {
	rc RaisingConverter[T]
}

func (r recovering[T]) Serialize(v T) any { return r.rc.Serialize(v) }

func (r recovering[T]) Deserialize(input any) (res mo.Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			de, ok := p.(*DeserializeError)
			if !ok {
				panic(p)
			}
			res = mo.Err[T](de)
		}
	}()
	return mo.Ok(r.rc.Deserialize(input))
}

// SafeDeserialize deserializes input through c, returning (zero, false) when
// deserialization fails.
func SafeDeserialize[T any](c Converter[T], input any) (T, bool) {
	res := c.Deserialize(input)
	if res.IsError() {
		var zero T
		return zero, false
	}
	return res.MustGet(), true
}
