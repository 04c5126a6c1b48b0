package dsl

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// String returns the converter for wire strings.
func String() wireconv.Converter[string] { return stringConverter{} }

type stringConverter struct{}

func (stringConverter) Serialize(v string) any { return v }

func (stringConverter) Deserialize(input any) mo.Result[string] {
	s, ok := input.(string)
	if !ok {
		return mo.Err[string](fmt.Errorf("Expected string, got %s", wireconv.TypeName(input)))
	}
	return mo.Ok(s)
}

// Number returns the converter for wire numbers. Integer and json.Number
// inputs are widened to float64 so a single numeric domain type covers every
// decoded payload.
func Number() wireconv.Converter[float64] { return numberConverter{} }

type numberConverter struct{}

func (numberConverter) Serialize(v float64) any { return v }

func (numberConverter) Deserialize(input any) mo.Result[float64] {
	switch n := input.(type) {
	case float64:
		return mo.Ok(n)
	case float32:
		return mo.Ok(float64(n))
	case int:
		return mo.Ok(float64(n))
	case int32:
		return mo.Ok(float64(n))
	case int64:
		return mo.Ok(float64(n))
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return mo.Ok(f)
		}
	}
	return mo.Err[float64](fmt.Errorf("Expected number, got %s", wireconv.TypeName(input)))
}

// Bool returns the converter for wire booleans.
func Bool() wireconv.Converter[bool] { return boolConverter{} }

type boolConverter struct{}

func (boolConverter) Serialize(v bool) any { return v }

func (boolConverter) Deserialize(input any) mo.Result[bool] {
	b, ok := input.(bool)
	if !ok {
		return mo.Err[bool](fmt.Errorf("Expected boolean, got %s", wireconv.TypeName(input)))
	}
	return mo.Ok(b)
}

// Date returns the converter between time.Time and RFC3339 wire strings.
// Serialization normalizes to UTC and trims trailing fractional zeros, so the
// round trip through the wire form preserves the instant exactly.
func Date() wireconv.Converter[time.Time] { return dateConverter{} }

type dateConverter struct{}

func (dateConverter) Serialize(v time.Time) any { return v.UTC().Format(time.RFC3339Nano) }

func (dateConverter) Deserialize(input any) mo.Result[time.Time] {
	s, ok := input.(string)
	if !ok {
		return mo.Err[time.Time](fmt.Errorf("Expected string for date, got %s", wireconv.TypeName(input)))
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return mo.Err[time.Time](fmt.Errorf("Invalid date string: %s", s))
	}
	return mo.Ok(t)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// Literal returns a converter accepting exactly one value. Serialization
// always emits the fixed constant.
func Literal[T comparable](value T) wireconv.Converter[T] {
	return literalConverter[T]{value: value}
}

type literalConverter[T comparable] struct {
	value T
}

func (l literalConverter[T]) Serialize(T) any { return l.value }

func (l literalConverter[T]) Deserialize(input any) mo.Result[T] {
	if tv, ok := input.(T); ok && tv == l.value {
		return mo.Ok(tv)
	}
	return mo.Err[T](fmt.Errorf("Expected literal %v, got %s", l.value, wireconv.FormatAtom(input)))
}

// Enum returns a converter whose valid set is the value set of mapping. The
// error message lists allowed values in sorted order so it stays stable
// across map iteration orders.
func Enum[T comparable](mapping map[string]T) wireconv.Converter[T] {
	members := make(map[T]struct{}, len(mapping))
	rendered := make([]string, 0, len(mapping))
	for _, v := range mapping {
		if _, seen := members[v]; seen {
			continue
		}
		members[v] = struct{}{}
		rendered = append(rendered, fmt.Sprintf("%v", v))
	}
	sort.Strings(rendered)
	return enumConverter[T]{members: members, allowed: strings.Join(rendered, ", ")}
}

type enumConverter[T comparable] struct {
	members map[T]struct{}
	allowed string
}

func (e enumConverter[T]) Serialize(v T) any { return v }

func (e enumConverter[T]) Deserialize(input any) mo.Result[T] {
	if tv, ok := input.(T); ok {
		if _, member := e.members[tv]; member {
			return mo.Ok(tv)
		}
	}
	return mo.Err[T](fmt.Errorf("Invalid enum value: %s. Expected one of: %s",
		wireconv.FormatAtom(input), e.allowed))
}
