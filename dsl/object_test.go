package dsl_test

import (
	"reflect"
	"testing"

	wireconv "github.com/wireconv/wireconv"
	g "github.com/wireconv/wireconv/dsl"
)

func userConverter() wireconv.Converter[map[string]any] {
	return g.Object().
		Field("name", g.Of(g.String())).
		Field("age", g.Of(g.Number())).
		Field("active", g.Of(g.Bool())).
		Build()
}

func TestObject_RoundTrip(t *testing.T) {
	user := userConverter()
	domain := map[string]any{"name": "Bob", "age": 42.0, "active": true}

	wire, ok := user.Serialize(domain).(map[string]any)
	if !ok {
		t.Fatalf("expected map wire form, got %#v", user.Serialize(domain))
	}
	res := user.Deserialize(wire)
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if !reflect.DeepEqual(res.MustGet(), domain) {
		t.Fatalf("round trip drifted: %#v vs %#v", res.MustGet(), domain)
	}
}

func TestObject_FieldError(t *testing.T) {
	user := userConverter()
	res := user.Deserialize(map[string]any{"name": "Bob", "age": "not a number", "active": false})
	if !res.IsError() {
		t.Fatalf("expected failure for mistyped field")
	}
	if got := res.Error().Error(); got != "Field 'age': Expected number, got string" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestObject_NotAnObject(t *testing.T) {
	user := userConverter()
	if got := user.Deserialize("not an object").Error().Error(); got != "Expected object" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := user.Deserialize([]any{}).Error().Error(); got != "Expected object" {
		t.Fatalf("unexpected message: %q", got)
	}
}

// TestObject_ShortCircuitOrder checks that the first failing field in
// declaration order wins, not an arbitrary map-iteration pick.
func TestObject_ShortCircuitOrder(t *testing.T) {
	conv := g.Object().
		Field("first", g.Of(g.Number())).
		Field("second", g.Of(g.Number())).
		Build()
	res := conv.Deserialize(map[string]any{"first": "x", "second": "y"})
	if got := res.Error().Error(); got != "Field 'first': Expected number, got string" {
		t.Fatalf("unexpected message: %q", got)
	}
}

// TestObject_OptionalFieldOmitted checks that an absent optional field is
// omitted from the wire object and restored as a nil pointer.
func TestObject_OptionalFieldOmitted(t *testing.T) {
	conv := g.Object().
		Field("name", g.Of(g.String())).
		Field("nickname", g.Of(g.Optional(g.String()))).
		Build()

	domain := map[string]any{"name": "Bob", "nickname": (*string)(nil)}
	wire, _ := conv.Serialize(domain).(map[string]any)
	if _, present := wire["nickname"]; present {
		t.Fatalf("absent optional field must be omitted from wire: %#v", wire)
	}

	res := conv.Deserialize(wire)
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if !reflect.DeepEqual(res.MustGet(), domain) {
		t.Fatalf("round trip drifted: %#v vs %#v", res.MustGet(), domain)
	}
}

// TestObject_MissingRequiredField checks that a missing field surfaces as the
// field converter's own failure against the absent value.
func TestObject_MissingRequiredField(t *testing.T) {
	user := userConverter()
	res := user.Deserialize(map[string]any{"name": "Bob", "active": true})
	if got := res.Error().Error(); got != "Field 'age': Expected number, got undefined" {
		t.Fatalf("unexpected message: %q", got)
	}
}
