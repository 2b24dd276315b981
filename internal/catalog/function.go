// Package catalog models the exported functions of a component, as
// supplied by the component-metadata service.
package catalog

import (
	"strings"

	"github.com/witbench/witbench/internal/render"
	"github.com/witbench/witbench/internal/wit"
)

// Param is a named function parameter.
type Param struct {
	Name string
	Typ  wit.Typ
}

// Function is one exported function: a name, ordered named parameters, and
// ordered unnamed results.
type Function struct {
	Name    string
	Params  []Param
	Results []wit.Typ
}

// ReturnTyp returns the type of the first result, or nil when the function
// returns nothing. Functions are assumed to return at most one logical
// value; further results are ignored for display.
func (f Function) ReturnTyp() wit.Typ {
	if len(f.Results) == 0 {
		return nil
	}
	return f.Results[0]
}

// Component is one component version's set of exported functions.
type Component struct {
	Name    string
	Version string
	Exports []Function
}

// Export looks up an exported function by name.
func (c Component) Export(name string) (Function, bool) {
	for _, fn := range c.Exports {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// Signature renders the one-line display form of a function, using each
// parameter's short rendering:
//
//	add-item(item: record, qty: u32) -> result<string, string>
//
// The arrow and return type are omitted when the function returns nothing.
func Signature(f Function) string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(render.Short(p.Typ))
	}
	b.WriteByte(')')
	if ret := f.ReturnTyp(); ret != nil {
		b.WriteString(" -> ")
		b.WriteString(render.Short(ret))
	}
	return b.String()
}
