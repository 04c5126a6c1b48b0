package wireconv

// undefinedValue marks an absent value on the wire. JSON and YAML have no
// encoding for it; object serialization omits members holding it.
type undefinedValue struct{}

// Undefined is the wire value standing for "absent". It is distinct from nil,
// which stands for an explicit null.
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// DropUndefined rewrites a wire value for encoders that cannot represent an
// absent value: Undefined mapping members are removed and Undefined sequence
// items become nil. Other values pass through unchanged.
func DropUndefined(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			if IsUndefined(mv) {
				continue
			}
			out[k] = DropUndefined(mv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			if IsUndefined(ev) {
				out[i] = nil
				continue
			}
			out[i] = DropUndefined(ev)
		}
		return out
	default:
		return v
	}
}
