package wit

// Typ is a sealed interface representing the type tree of a function
// parameter or result. Only Prim, List, Option, Result, Tuple, Record,
// Variant, Enum, and Unrecognized implement it.
type Typ interface {
	typ() // Sealed - only types in this package implement it
}

// Kind identifies a primitive type.
type Kind string

const (
	KindBool Kind = "Bool"
	KindS8   Kind = "S8"
	KindS16  Kind = "S16"
	KindS32  Kind = "S32"
	KindS64  Kind = "S64"
	KindU8   Kind = "U8"
	KindU16  Kind = "U16"
	KindU32  Kind = "U32"
	KindU64  Kind = "U64"
	KindF32  Kind = "F32"
	KindF64  Kind = "F64"
	KindChar Kind = "Char"
	KindStr  Kind = "Str"
)

// Prim represents a primitive type (no payload beyond its kind).
type Prim struct {
	Kind Kind
}

func (Prim) typ() {}

// Shorthand primitives for constructing trees in code and tests.
var (
	Bool = Prim{KindBool}
	S8   = Prim{KindS8}
	S16  = Prim{KindS16}
	S32  = Prim{KindS32}
	S64  = Prim{KindS64}
	U8   = Prim{KindU8}
	U16  = Prim{KindU16}
	U32  = Prim{KindU32}
	U64  = Prim{KindU64}
	F32  = Prim{KindF32}
	F64  = Prim{KindF64}
	Char = Prim{KindChar}
	Str  = Prim{KindStr}
)

// List is a homogeneous, unbounded sequence of Elem.
type List struct {
	Elem Typ
}

func (List) typ() {}

// Option is a present/absent wrapper around Some.
type Option struct {
	Some Typ
}

func (Option) typ() {}

// Result holds exactly one of two alternatives.
type Result struct {
	Ok  Typ
	Err Typ
}

func (Result) typ() {}

// Tuple is a fixed-arity sequence of unnamed element types.
// Elems may be empty.
type Tuple struct {
	Elems []Typ
}

func (Tuple) typ() {}

// Field is a named record field. Name order is display order.
type Field struct {
	Name string
	Typ  Typ
}

// Record is an ordered sequence of named fields. Fields may be empty.
type Record struct {
	Fields []Field
}

func (Record) typ() {}

// Case is a named variant case. Typ is nil when the case carries no payload.
type Case struct {
	Name string
	Typ  Typ
}

// Variant is a closed set of named cases; exactly one is selected at
// runtime. Cases may be empty.
type Variant struct {
	Cases []Case
}

func (Variant) typ() {}

// Enum is a closed set of case names with no associated payload.
// Cases may be empty.
type Enum struct {
	Cases []string
}

func (Enum) typ() {}

// Unrecognized preserves a wire tag this engine does not know. The renderer
// maps it to "unknown"; the payload codec refuses it with the original tag.
type Unrecognized struct {
	Tag string
}

func (Unrecognized) typ() {}

// Tag returns the wire tag of a type node. A nil Typ has no tag and returns
// the empty string.
func Tag(t Typ) string {
	switch v := t.(type) {
	case nil:
		return ""
	case Prim:
		return string(v.Kind)
	case List:
		return "List"
	case Option:
		return "Option"
	case Result:
		return "Result"
	case Tuple:
		return "Tuple"
	case Record:
		return "Record"
	case Variant:
		return "Variant"
	case Enum:
		return "Enum"
	case Unrecognized:
		return v.Tag
	default:
		return ""
	}
}
