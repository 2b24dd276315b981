// Package payload converts edited value trees into the typed wire payload
// required to invoke a function.
//
// Display must always succeed; encoding must be conservative. The codec
// passes through what the editor is trusted to produce, normalizes the one
// shape it can normalize safely (a bare list element), and rejects
// everything else with a typed error instead of guessing.
package payload

import (
	"errors"
	"fmt"

	"github.com/witbench/witbench/internal/catalog"
	"github.com/witbench/witbench/internal/value"
	"github.com/witbench/witbench/internal/wit"
)

// Arg pairs an encoded value with its declared type: one element of the
// wire-ready argument list.
type Arg struct {
	Value value.Value
	Typ   wit.Typ
}

// UnsupportedTypeError reports a type tag the codec cannot encode. It is
// surfaced to the caller and never retried: it means the editor cannot yet
// represent the type.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: cannot encode for invocation", e.Tag)
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedType(err error) bool {
	var ue *UnsupportedTypeError
	return errors.As(err, &ue)
}

// Encode converts one edited value into its wire argument.
//
// Primitives, Tuple, Record, and Enum pass through unchanged: the editor is
// trusted to have produced a structurally compatible value. A List value
// that is not already a sequence is wrapped in a one-element sequence
// (idempotent). Option, Result, Variant, and unrecognized tags fail with
// UnsupportedTypeError.
func Encode(v value.Value, t wit.Typ) (Arg, error) {
	switch t.(type) {
	case wit.Prim, wit.Tuple, wit.Record, wit.Enum:
		return Arg{Value: v, Typ: t}, nil

	case wit.List:
		if seq, ok := v.(value.Sequence); ok {
			return Arg{Value: seq, Typ: t}, nil
		}
		return Arg{Value: value.Sequence{v}, Typ: t}, nil

	default:
		tag := wit.Tag(t)
		if tag == "" {
			tag = "null"
		}
		return Arg{}, &UnsupportedTypeError{Tag: tag}
	}
}

// EncodeParams encodes one value per parameter, index-aligned with the
// function's declared parameters. Parameter count mismatch is the caller's
// responsibility to prevent; values beyond the declared parameters are
// ignored and missing values are not synthesized.
func EncodeParams(fn catalog.Function, values []value.Value) ([]Arg, error) {
	n := len(fn.Params)
	if len(values) < n {
		n = len(values)
	}

	args := make([]Arg, n)
	for i := 0; i < n; i++ {
		arg, err := Encode(values[i], fn.Params[i].Typ)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", fn.Params[i].Name, err)
		}
		args[i] = arg
	}
	return args, nil
}
