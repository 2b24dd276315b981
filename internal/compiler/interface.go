// Package compiler turns CUE interface documents into component catalogs.
//
// CUE is the native authoring format for fixtures and for components whose
// metadata service is not reachable. A document names the component and its
// exported functions:
//
//	component: "shopping-cart"
//	version:   "0.3.1"
//	export: {
//		"add-item": {
//			params: {
//				item: {type: "Record", fields: [{name: "id", typ: {type: "Str"}}]}
//				qty:  int
//			}
//			result: {type: "Result", ok: {type: "Str"}, err: {type: "Str"}}
//		}
//		ping: {}
//	}
//
// Parameter types are written either as CUE kinds (string, int, bool,
// number) or in the structured wire form used by the metadata service.
// A plain struct without a "type" field is an inline record.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/witbench/witbench/internal/catalog"
	"github.com/witbench/witbench/internal/wit"
)

// CompileComponent parses a CUE value into a component catalog.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
func CompileComponent(v cue.Value) (catalog.Component, error) {
	if err := v.Err(); err != nil {
		return catalog.Component{}, formatCUEError(err)
	}

	var c catalog.Component

	nameVal := v.LookupPath(cue.ParsePath("component"))
	if !nameVal.Exists() {
		return catalog.Component{}, &CompileError{
			Field:   "component",
			Message: "component name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return catalog.Component{}, formatCUEError(err)
	}
	c.Name = name

	versionVal := v.LookupPath(cue.ParsePath("version"))
	if versionVal.Exists() {
		version, err := versionVal.String()
		if err != nil {
			return catalog.Component{}, formatCUEError(err)
		}
		c.Version = version
	}

	exportVal := v.LookupPath(cue.ParsePath("export"))
	if !exportVal.Exists() {
		return catalog.Component{}, &CompileError{
			Field:   "export",
			Message: "at least one export is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := exportVal.Fields()
	if err != nil {
		return catalog.Component{}, formatCUEError(err)
	}
	for iter.Next() {
		fn, err := compileFunction(iter.Label(), iter.Value())
		if err != nil {
			return catalog.Component{}, err
		}
		c.Exports = append(c.Exports, fn)
	}

	if len(c.Exports) == 0 {
		return catalog.Component{}, &CompileError{
			Field:   "export",
			Message: "at least one export is required",
			Pos:     exportVal.Pos(),
		}
	}

	return c, nil
}

// CompileComponentBytes compiles a standalone CUE document.
func CompileComponentBytes(data []byte, filename string) (catalog.Component, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	return CompileComponent(v)
}

func compileFunction(name string, v cue.Value) (catalog.Function, error) {
	fn := catalog.Function{Name: name}

	paramsVal := v.LookupPath(cue.ParsePath("params"))
	if paramsVal.Exists() {
		iter, err := paramsVal.Fields()
		if err != nil {
			return catalog.Function{}, formatCUEError(err)
		}
		for iter.Next() {
			typ, err := extractTyp(iter.Value())
			if err != nil {
				return catalog.Function{}, err
			}
			fn.Params = append(fn.Params, catalog.Param{
				Name: iter.Label(),
				Typ:  typ,
			})
		}
	}

	resultVal := v.LookupPath(cue.ParsePath("result"))
	if resultVal.Exists() {
		typ, err := extractTyp(resultVal)
		if err != nil {
			return catalog.Function{}, err
		}
		fn.Results = []wit.Typ{typ}
	}

	return fn, nil
}

// extractTyp converts a CUE type expression to a type tree.
func extractTyp(v cue.Value) (wit.Typ, error) {
	if v.IncompleteKind() == cue.StructKind {
		// Structured wire form: a struct with a "type" tag.
		if tagVal := v.LookupPath(cue.ParsePath("type")); tagVal.Exists() {
			data, err := v.MarshalJSON()
			if err != nil {
				return nil, formatCUEError(err)
			}
			typ, err := wit.UnmarshalTyp(data)
			if err != nil {
				return nil, &CompileError{
					Field:   "type",
					Message: err.Error(),
					Pos:     v.Pos(),
				}
			}
			return typ, nil
		}

		// A plain struct is an inline record.
		iter, err := v.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		var fields []wit.Field
		for iter.Next() {
			ft, err := extractTyp(iter.Value())
			if err != nil {
				return nil, err
			}
			fields = append(fields, wit.Field{
				Name: iter.Label(),
				Typ:  ft,
			})
		}
		rec := wit.Record{Fields: fields}
		if err := wit.Validate(rec); err != nil {
			return nil, &CompileError{Field: "type", Message: err.Error(), Pos: v.Pos()}
		}
		return rec, nil
	}

	switch v.IncompleteKind() {
	case cue.StringKind:
		return wit.Str, nil
	case cue.IntKind:
		return wit.S64, nil
	case cue.BoolKind:
		return wit.Bool, nil
	case cue.FloatKind, cue.NumberKind:
		return wit.F64, nil
	default:
		return nil, &CompileError{
			Field:   "type",
			Message: fmt.Sprintf("unsupported type kind: %v - use the structured form", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}
}
