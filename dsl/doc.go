// Package dsl provides the combinators that build wireconv converter trees:
// primitives (String, Number, Bool, Date, Literal, Enum), composites (Object,
// Array, Tuple, Record, Union), and modifiers (Optional, Nullable,
// WithDefault, Mapped, Rename, Lazy).
//
// Converter trees are built bottom-up: primitives feed composites and
// modifiers, and the root converter is the public entry point. Heterogeneous
// field and tuple tables hold converters erased through Of.
package dsl
