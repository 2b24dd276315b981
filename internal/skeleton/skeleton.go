// Package skeleton synthesizes structurally valid default values for type
// trees. The defaults seed the interactive argument editor: empty strings,
// zero numbers, empty sequences, null for anything without an obvious
// minimal value.
package skeleton

import (
	"github.com/witbench/witbench/internal/value"
	"github.com/witbench/witbench/internal/wit"
)

// New builds the default value for a type. It is total and deterministic:
// every type, including empty composites and unrecognized tags, yields a
// value without error.
func New(t wit.Typ) value.Value {
	switch v := t.(type) {
	case wit.Prim:
		switch v.Kind {
		case wit.KindStr, wit.KindChar:
			return value.String("")
		case wit.KindBool:
			return value.Bool(false)
		case wit.KindS8, wit.KindS16, wit.KindS32, wit.KindS64,
			wit.KindU8, wit.KindU16, wit.KindU32, wit.KindU64,
			wit.KindF32, wit.KindF64:
			return value.Number(0)
		default:
			return value.Null{}
		}

	case wit.Record:
		m := make(value.Mapping, len(v.Fields))
		for i, f := range v.Fields {
			m[i] = value.Entry{Key: f.Name, Value: New(f.Typ)}
		}
		return m

	case wit.Tuple:
		seq := make(value.Sequence, len(v.Elems))
		for i, elem := range v.Elems {
			seq[i] = New(elem)
		}
		return seq

	case wit.List:
		// Never pre-populate an element.
		return value.Sequence{}

	case wit.Option:
		return value.Null{}

	case wit.Enum:
		// No case pre-selected.
		return value.String("")

	default:
		// Result, Variant, unrecognized tags, absent types: the editor
		// starts from null.
		return value.Null{}
	}
}
