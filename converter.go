package wireconv

import "github.com/samber/mo"

// Converter is the serialize/deserialize capability pair for one typed shape.
//
// Serialize is total for well-typed values and emits a wire value: a scalar,
// an []any sequence, a map[string]any mapping, or the Undefined sentinel.
// Deserialize never assumes its input already matches the wire shape; it
// checks the concrete type of the input before interpreting it and reports
// failures through the Result container.
//
// Converters are stateless and immutable once constructed (a lazy converter's
// one-time memoization slot excepted), so a single converter may be shared
// freely across goroutines.
type Converter[T any] interface {
	Serialize(v T) any
	Deserialize(input any) mo.Result[T]
}
