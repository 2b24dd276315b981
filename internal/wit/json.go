package wit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire shape produced by the component-metadata service:
//
//	{"type": "U32"}
//	{"type": "List", "inner": T}
//	{"type": "Option", "inner": T}
//	{"type": "Result", "ok": T, "err": T}
//	{"type": "Tuple", "fields": [T, ...]}
//	{"type": "Record", "fields": [{"name": "a", "typ": T}, ...]}
//	{"type": "Variant", "cases": [{"name": "a", "typ": T}, ...]}
//	{"type": "Enum", "cases": ["a", ...]}
//
// Unknown "type" tags decode to Unrecognized so display stays possible.

type typWire struct {
	Type   string          `json:"type"`
	Inner  json.RawMessage `json:"inner,omitempty"`
	Ok     json.RawMessage `json:"ok,omitempty"`
	Err    json.RawMessage `json:"err,omitempty"`
	Fields json.RawMessage `json:"fields,omitempty"`
	Cases  json.RawMessage `json:"cases,omitempty"`
}

type fieldWire struct {
	Name string          `json:"name"`
	Typ  json.RawMessage `json:"typ"`
}

var primKinds = map[string]Kind{
	"Bool": KindBool,
	"S8":   KindS8,
	"S16":  KindS16,
	"S32":  KindS32,
	"S64":  KindS64,
	"U8":   KindU8,
	"U16":  KindU16,
	"U32":  KindU32,
	"U64":  KindU64,
	"F32":  KindF32,
	"F64":  KindF64,
	"Char": KindChar,
	"Str":  KindStr,
}

// UnmarshalTyp decodes a metadata-service type tree. A JSON null decodes to
// a nil Typ (absent type). Decoded composites are validated for duplicate
// field and case names.
func UnmarshalTyp(data []byte) (Typ, error) {
	t, err := unmarshalTyp(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

func unmarshalTyp(data []byte) (Typ, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var w typWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode type: %w", err)
	}

	if kind, ok := primKinds[w.Type]; ok {
		return Prim{Kind: kind}, nil
	}

	switch w.Type {
	case "List":
		inner, err := unmarshalTyp(w.Inner)
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		return List{Elem: inner}, nil

	case "Option":
		inner, err := unmarshalTyp(w.Inner)
		if err != nil {
			return nil, fmt.Errorf("option: %w", err)
		}
		return Option{Some: inner}, nil

	case "Result":
		ok, err := unmarshalTyp(w.Ok)
		if err != nil {
			return nil, fmt.Errorf("result ok: %w", err)
		}
		errTyp, err := unmarshalTyp(w.Err)
		if err != nil {
			return nil, fmt.Errorf("result err: %w", err)
		}
		return Result{Ok: ok, Err: errTyp}, nil

	case "Tuple":
		var raws []json.RawMessage
		if len(w.Fields) > 0 {
			if err := json.Unmarshal(w.Fields, &raws); err != nil {
				return nil, fmt.Errorf("tuple fields: %w", err)
			}
		}
		elems := make([]Typ, len(raws))
		for i, raw := range raws {
			elem, err := unmarshalTyp(raw)
			if err != nil {
				return nil, fmt.Errorf("tuple[%d]: %w", i, err)
			}
			elems[i] = elem
		}
		return Tuple{Elems: elems}, nil

	case "Record":
		var raws []fieldWire
		if len(w.Fields) > 0 {
			if err := json.Unmarshal(w.Fields, &raws); err != nil {
				return nil, fmt.Errorf("record fields: %w", err)
			}
		}
		fields := make([]Field, len(raws))
		for i, raw := range raws {
			ft, err := unmarshalTyp(raw.Typ)
			if err != nil {
				return nil, fmt.Errorf("record field %q: %w", raw.Name, err)
			}
			fields[i] = Field{Name: raw.Name, Typ: ft}
		}
		return Record{Fields: fields}, nil

	case "Variant":
		var raws []fieldWire
		if len(w.Cases) > 0 {
			if err := json.Unmarshal(w.Cases, &raws); err != nil {
				return nil, fmt.Errorf("variant cases: %w", err)
			}
		}
		cases := make([]Case, len(raws))
		for i, raw := range raws {
			ct, err := unmarshalTyp(raw.Typ)
			if err != nil {
				return nil, fmt.Errorf("variant case %q: %w", raw.Name, err)
			}
			cases[i] = Case{Name: raw.Name, Typ: ct}
		}
		return Variant{Cases: cases}, nil

	case "Enum":
		var names []string
		if len(w.Cases) > 0 {
			if err := json.Unmarshal(w.Cases, &names); err != nil {
				return nil, fmt.Errorf("enum cases: %w", err)
			}
		}
		return Enum{Cases: names}, nil

	default:
		return Unrecognized{Tag: w.Type}, nil
	}
}

// MarshalTyp encodes a type tree back into the wire shape. A nil Typ
// marshals to JSON null.
func MarshalTyp(t Typ) ([]byte, error) {
	v, err := marshalTyp(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// marshalTyp builds the plain wire representation. Uses ordered maps via
// struct types so output key order is stable.
func marshalTyp(t Typ) (any, error) {
	switch v := t.(type) {
	case nil:
		return nil, nil

	case Prim:
		return struct {
			Type string `json:"type"`
		}{string(v.Kind)}, nil

	case List:
		inner, err := marshalTyp(v.Elem)
		if err != nil {
			return nil, err
		}
		return struct {
			Type  string `json:"type"`
			Inner any    `json:"inner"`
		}{"List", inner}, nil

	case Option:
		inner, err := marshalTyp(v.Some)
		if err != nil {
			return nil, err
		}
		return struct {
			Type  string `json:"type"`
			Inner any    `json:"inner"`
		}{"Option", inner}, nil

	case Result:
		ok, err := marshalTyp(v.Ok)
		if err != nil {
			return nil, err
		}
		errTyp, err := marshalTyp(v.Err)
		if err != nil {
			return nil, err
		}
		return struct {
			Type string `json:"type"`
			Ok   any    `json:"ok"`
			Err  any    `json:"err"`
		}{"Result", ok, errTyp}, nil

	case Tuple:
		elems := make([]any, len(v.Elems))
		for i, elem := range v.Elems {
			e, err := marshalTyp(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return struct {
			Type   string `json:"type"`
			Fields []any  `json:"fields"`
		}{"Tuple", elems}, nil

	case Record:
		type field struct {
			Name string `json:"name"`
			Typ  any    `json:"typ"`
		}
		fields := make([]field, len(v.Fields))
		for i, f := range v.Fields {
			ft, err := marshalTyp(f.Typ)
			if err != nil {
				return nil, err
			}
			fields[i] = field{f.Name, ft}
		}
		return struct {
			Type   string  `json:"type"`
			Fields []field `json:"fields"`
		}{"Record", fields}, nil

	case Variant:
		type wireCase struct {
			Name string `json:"name"`
			Typ  any    `json:"typ"`
		}
		cases := make([]wireCase, len(v.Cases))
		for i, c := range v.Cases {
			ct, err := marshalTyp(c.Typ)
			if err != nil {
				return nil, err
			}
			cases[i] = wireCase{c.Name, ct}
		}
		return struct {
			Type  string     `json:"type"`
			Cases []wireCase `json:"cases"`
		}{"Variant", cases}, nil

	case Enum:
		return struct {
			Type  string   `json:"type"`
			Cases []string `json:"cases"`
		}{"Enum", v.Cases}, nil

	case Unrecognized:
		return struct {
			Type string `json:"type"`
		}{v.Tag}, nil

	default:
		return nil, fmt.Errorf("unknown Typ: %T", t)
	}
}
