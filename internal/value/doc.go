// Package value defines the untyped value tree that flows between the
// skeleton generator, the argument editor, and the payload codec.
//
// Value is a sealed interface over a small closed set: Null, Bool, Number,
// String, Sequence, and Mapping. It mirrors the type tree structurally but
// carries no type tags of its own.
//
// Mapping preserves entry order: field order is display order, so keys are
// never sorted. Numbers are IEEE-754 doubles with JSON semantics.
package value
