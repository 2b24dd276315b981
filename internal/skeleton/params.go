package skeleton

import (
	"github.com/witbench/witbench/internal/catalog"
	"github.com/witbench/witbench/internal/value"
)

// ForParams builds one default value per parameter, in declared parameter
// order. The result is the initial state of the invocation-argument editor.
func ForParams(fn catalog.Function) []value.Value {
	values := make([]value.Value, len(fn.Params))
	for i, p := range fn.Params {
		values[i] = New(p.Typ)
	}
	return values
}
