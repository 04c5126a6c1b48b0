package wireconv_test

import (
	"testing"

	wireconv "github.com/wireconv/wireconv"
	g "github.com/wireconv/wireconv/dsl"
)

// catchDeserialize runs the panicking convention and reports whether it
// raised, capturing the message.
func catchDeserialize[T any](rc wireconv.RaisingConverter[T], input any) (v T, msg string, raised bool) {
	defer func() {
		if p := recover(); p != nil {
			de, ok := p.(*wireconv.DeserializeError)
			if !ok {
				panic(p)
			}
			msg = de.Message
			raised = true
		}
	}()
	v = rc.Deserialize(input)
	return
}

func TestRaise_Success(t *testing.T) {
	rc := wireconv.Raise(g.String())
	if got := rc.Deserialize("ok"); got != "ok" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := rc.Serialize("ok"); got != "ok" {
		t.Fatalf("unexpected wire value: %v", got)
	}
}

func TestRaise_FailurePanicsWithSameMessage(t *testing.T) {
	conv := g.Object().
		Field("name", g.Of(g.String())).
		Field("age", g.Of(g.Number())).
		Build()
	input := map[string]any{"name": "Bob", "age": "not a number"}

	want := conv.Deserialize(input).Error().Error()
	_, msg, raised := catchDeserialize(wireconv.Raise(conv), input)
	if !raised {
		t.Fatalf("expected a raised error")
	}
	if msg != want {
		t.Fatalf("conventions diverged: raised %q, result %q", msg, want)
	}
}

// TestRaiseRecover_Agreement drives both conventions over the same inputs and
// checks they never diverge in outcome or message text.
func TestRaiseRecover_Agreement(t *testing.T) {
	conv := g.Object().
		Field("name", g.Of(g.String())).
		Field("tags", g.Of(g.Array(g.String()))).
		Build()
	recovered := wireconv.Recover(wireconv.Raise(conv))

	inputs := []any{
		map[string]any{"name": "a", "tags": []any{"x", "y"}},
		map[string]any{"name": "a", "tags": []any{"x", 1.0}},
		map[string]any{"name": 1.0, "tags": []any{}},
		"not an object",
		nil,
	}
	for _, in := range inputs {
		direct := conv.Deserialize(in)
		viaPanic := recovered.Deserialize(in)
		if direct.IsError() != viaPanic.IsError() {
			t.Fatalf("outcome diverged for %#v", in)
		}
		if direct.IsError() && direct.Error().Error() != viaPanic.Error().Error() {
			t.Fatalf("message diverged for %#v: %q vs %q",
				in, direct.Error().Error(), viaPanic.Error().Error())
		}
	}
}

// explodingConverter panics with a plain string, standing in for a caller bug
// rather than a deserialization failure.
type explodingConverter struct{}

func (explodingConverter) Serialize(v string) any       { return v }
func (explodingConverter) Deserialize(input any) string { panic("boom") }

func TestRecover_ForeignPanicPropagates(t *testing.T) {
	recovered := wireconv.Recover[string](explodingConverter{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected non-deserialization panic to propagate")
		}
	}()
	recovered.Deserialize("anything")
}

func TestSafeDeserialize(t *testing.T) {
	if v, ok := wireconv.SafeDeserialize(g.String(), "hi"); !ok || v != "hi" {
		t.Fatalf("expected ok, got v=%q ok=%v", v, ok)
	}
	if v, ok := wireconv.SafeDeserialize(g.String(), 1); ok || v != "" {
		t.Fatalf("expected zero value and !ok, got v=%q ok=%v", v, ok)
	}
}
