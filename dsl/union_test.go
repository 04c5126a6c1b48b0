package dsl_test

import (
	"reflect"
	"testing"

	wireconv "github.com/wireconv/wireconv"
	g "github.com/wireconv/wireconv/dsl"
)

func paymentConverter() wireconv.Converter[map[string]any] {
	card := g.Object().
		Field("type", g.Of(g.Literal("card"))).
		Field("number", g.Of(g.String())).
		Build()
	bank := g.Object().
		Field("type", g.Of(g.Literal("bank"))).
		Field("iban", g.Of(g.String())).
		Build()
	return g.Union(func(v map[string]any) string {
		s, _ := v["type"].(string)
		return s
	}).
		Variant("card", card).
		Variant("bank", bank).
		Build()
}

func TestUnion_Dispatch(t *testing.T) {
	pay := paymentConverter()

	res := pay.Deserialize(map[string]any{"type": "card", "number": "4111111111111111"})
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if res.MustGet()["number"] != "4111111111111111" {
		t.Fatalf("unexpected value: %#v", res.MustGet())
	}

	res = pay.Deserialize(map[string]any{"type": "bank", "iban": "DE89370400440532013000"})
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if res.MustGet()["iban"] == nil {
		t.Fatalf("iban missing: %#v", res.MustGet())
	}
}

func TestUnion_SerializeMergesTag(t *testing.T) {
	pay := paymentConverter()
	domain := map[string]any{"type": "card", "number": "4111111111111111"}
	wire, ok := pay.Serialize(domain).(map[string]any)
	if !ok {
		t.Fatalf("expected map wire form")
	}
	if wire["type"] != "card" {
		t.Fatalf("tag field missing from wire form: %#v", wire)
	}
	res := pay.Deserialize(wire)
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if !reflect.DeepEqual(res.MustGet(), domain) {
		t.Fatalf("round trip drifted: %#v", res.MustGet())
	}
}

func TestUnion_Failures(t *testing.T) {
	pay := paymentConverter()
	if got := pay.Deserialize("nope").Error().Error(); got != "Expected object for union" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := pay.Deserialize(map[string]any{"type": "wire"}).Error().Error(); got != "Unknown union variant: wire" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := pay.Deserialize(map[string]any{"number": "x"}).Error().Error(); got != "Unknown union variant: undefined" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUnion_CustomTagField(t *testing.T) {
	circle := g.Object().
		Field("kind", g.Of(g.Literal("circle"))).
		Field("radius", g.Of(g.Number())).
		Build()
	shape := g.Union(func(v map[string]any) string {
		s, _ := v["kind"].(string)
		return s
	}).
		TagField("kind").
		Variant("circle", circle).
		Build()

	domain := map[string]any{"kind": "circle", "radius": 2.5}
	res := shape.Deserialize(shape.Serialize(domain))
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Error())
	}
	if !reflect.DeepEqual(res.MustGet(), domain) {
		t.Fatalf("round trip drifted: %#v", res.MustGet())
	}
}
