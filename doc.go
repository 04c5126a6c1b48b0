// Package wireconv builds bidirectional converters between typed Go values
// and structural wire values (scalars, []any sequences, and map[string]any
// mappings).
//
//   - Converters compose from primitive, composite, and modifier combinators
//     under dsl/.
//   - Deserialization reports failures through mo.Result, with one positional
//     prefix added per enclosing composite level.
//   - Raise/Recover derive the panicking calling convention from the canonical
//     result-returning one (and back) without duplicating converter logic.
//   - source/json and source/yaml bridge encoded payloads to wire values.
//
// Design policy:
// - Keep only the core contract and calling-convention adapters in the root
//   package; put combinators under dsl/ and payload bridges under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("name", dsl.Of(dsl.String())).
//		Field("age", dsl.Of(dsl.Number())).
//		Build()
//	res := user.Deserialize(wireValue)
package wireconv
