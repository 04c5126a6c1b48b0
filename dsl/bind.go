package dsl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/mo"

	wireconv "github.com/wireconv/wireconv"
)

// Bind projects an object converter onto a struct type T. External keys are
// resolved from `json` tags, falling back to the exported field name; a "-"
// tag excludes the field. T must be a struct type.
func Bind[T any](obj wireconv.Converter[map[string]any]) wireconv.Converter[T] {
	return bindConverter[T]{obj: obj}
}

type bindConverter[T any] struct {
	obj wireconv.Converter[map[string]any]
}

func (b bindConverter[T]) Serialize(v T) any {
	return b.obj.Serialize(structToMap(reflect.ValueOf(v)))
}

func (b bindConverter[T]) Deserialize(input any) mo.Result[T] {
	res := b.obj.Deserialize(input)
	if res.IsError() {
		return mo.Err[T](res.Error())
	}
	var out T
	if err := mapToStruct(res.MustGet(), reflect.ValueOf(&out).Elem()); err != nil {
		return mo.Err[T](err)
	}
	return mo.Ok(out)
}

// resolveStructKey applies the binding rule for a struct field's external key:
// json tag name over field name; "-" disables the field.
func resolveStructKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

func structToMap(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		out[key] = rv.Field(i).Interface()
	}
	return out
}

func mapToStruct(m map[string]any, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		fv, ok := m[key]
		if !ok || fv == nil {
			continue
		}
		val := reflect.ValueOf(fv)
		field := rv.Field(i)
		switch {
		case val.Type().AssignableTo(field.Type()):
			field.Set(val)
		case isNumericKind(val.Kind()) && isNumericKind(field.Kind()):
			field.Set(val.Convert(field.Type()))
		default:
			return fmt.Errorf("Field '%s': cannot bind %s to %s", key, val.Type(), field.Type())
		}
	}
	return nil
}
