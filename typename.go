package wireconv

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// TypeName renders the wire-type vocabulary used in error messages: "string",
// "number", "boolean", "null", "undefined", "array", "object", "date". Values
// outside that vocabulary fall back to their Go type name.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time:
		return "date"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FormatAtom renders a scalar input for error messages, keeping the
// null/undefined vocabulary consistent with TypeName.
func FormatAtom(v any) string {
	switch {
	case v == nil:
		return "null"
	case IsUndefined(v):
		return "undefined"
	default:
		return fmt.Sprintf("%v", v)
	}
}
