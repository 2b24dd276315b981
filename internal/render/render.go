// Package render turns type trees into display strings.
//
// Every type renders two ways: a Short form, compact enough for an inline
// label, and a Full form, the expanded declaration shown on demand (detail
// popovers with copy-to-clipboard). Rendering is total: absent input maps
// to "null" and unrecognized tags map to "unknown" so display is always
// possible, even for partially-loaded metadata.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/witbench/witbench/internal/wit"
)

// Rendering holds the two display forms of a type.
type Rendering struct {
	Short string
	Full  string
}

const indentStep = "  "

// Render produces the short and full renderings of a type. It never fails.
func Render(t wit.Typ) Rendering {
	return Rendering{
		Short: Short(t),
		Full:  full(t, 0),
	}
}

// Short renders the compact inline form of a type.
func Short(t wit.Typ) string {
	switch v := t.(type) {
	case nil:
		return "null"

	case wit.Prim:
		return primShort(v.Kind)

	case wit.List:
		return "list<" + Short(v.Elem) + ">"

	case wit.Option:
		return "option<" + Short(v.Some) + ">"

	case wit.Result:
		return "result<" + Short(v.Ok) + ", " + Short(v.Err) + ">"

	case wit.Tuple:
		parts := make([]string, len(v.Elems))
		for i, elem := range v.Elems {
			parts[i] = Short(elem)
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"

	// Composites with named members never expand inline.
	case wit.Record:
		return "record"
	case wit.Variant:
		return "variant"
	case wit.Enum:
		return "enum"

	default:
		return "unknown"
	}
}

// Full renders the expanded declaration of a type.
func Full(t wit.Typ) string {
	return full(t, 0)
}

func full(t wit.Typ, indent int) string {
	switch v := t.(type) {
	case nil:
		return "null"

	case wit.Prim:
		if v.Kind == wit.KindStr {
			// The short form is the display alias; the full form is the
			// canonical name.
			return "String"
		}
		return primShort(v.Kind)

	case wit.List:
		return "list<" + full(v.Elem, indent) + ">"

	case wit.Option:
		return "Option<" + full(v.Some, indent) + ">"

	case wit.Result:
		return "Result<" + full(v.Ok, indent) + ", " + full(v.Err, indent) + ">"

	case wit.Tuple:
		parts := make([]string, len(v.Elems))
		for i, elem := range v.Elems {
			parts[i] = full(elem, indent)
		}
		return "(" + strings.Join(parts, ", ") + ")"

	case wit.Record:
		if len(v.Fields) == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		pad := strings.Repeat(indentStep, indent+1)
		for i, f := range v.Fields {
			b.WriteString(pad)
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(full(f.Typ, indent+1))
			if i < len(v.Fields)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indentStep, indent))
		b.WriteByte('}')
		return b.String()

	case wit.Variant:
		if len(v.Cases) == 0 {
			return "enum { }"
		}
		parts := make([]string, len(v.Cases))
		for i, c := range v.Cases {
			// Cases with no payload still show Name().
			payload := ""
			if c.Typ != nil {
				payload = full(c.Typ, indent)
			}
			parts[i] = capitalize(c.Name) + "(" + payload + ")"
		}
		return "enum { " + strings.Join(parts, ", ") + " }"

	case wit.Enum:
		if len(v.Cases) == 0 {
			return "enum ( )"
		}
		parts := make([]string, len(v.Cases))
		for i, name := range v.Cases {
			parts[i] = capitalize(name)
		}
		return "enum ( " + strings.Join(parts, ", ") + " )"

	default:
		return "unknown"
	}
}

func primShort(k wit.Kind) string {
	switch k {
	case wit.KindBool:
		return "bool"
	case wit.KindS8:
		return "i8"
	case wit.KindS16:
		return "i16"
	case wit.KindS32:
		return "i32"
	case wit.KindS64:
		return "i64"
	case wit.KindU8:
		return "u8"
	case wit.KindU16:
		return "u16"
	case wit.KindU32:
		return "u32"
	case wit.KindU64:
		return "u64"
	case wit.KindF32:
		return "f32"
	case wit.KindF64:
		return "f64"
	case wit.KindChar:
		return "char"
	case wit.KindStr:
		return "string"
	default:
		return "unknown"
	}
}

// capitalize upper-cases the first character regardless of input casing.
// The rest of the name is left untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
