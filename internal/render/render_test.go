package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witbench/witbench/internal/wit"
)

func TestRenderPrimitives(t *testing.T) {
	tests := []struct {
		typ   wit.Typ
		short string
		full  string
	}{
		{wit.Bool, "bool", "bool"},
		{wit.S8, "i8", "i8"},
		{wit.S16, "i16", "i16"},
		{wit.S32, "i32", "i32"},
		{wit.S64, "i64", "i64"},
		{wit.U8, "u8", "u8"},
		{wit.U16, "u16", "u16"},
		{wit.U32, "u32", "u32"},
		{wit.U64, "u64", "u64"},
		{wit.F32, "f32", "f32"},
		{wit.F64, "f64", "f64"},
		{wit.Char, "char", "char"},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			r := Render(tt.typ)
			assert.Equal(t, tt.short, r.Short)
			assert.Equal(t, tt.full, r.Full)
			// Every primitive renders short == full...
			assert.Equal(t, r.Short, r.Full)
		})
	}
}

func TestRenderStr(t *testing.T) {
	// ...except Str, whose full form is the canonical name.
	r := Render(wit.Str)
	assert.Equal(t, "string", r.Short)
	assert.Equal(t, "String", r.Full)
}

func TestRenderAbsentAndUnrecognized(t *testing.T) {
	r := Render(nil)
	assert.Equal(t, "null", r.Short)
	assert.Equal(t, "null", r.Full)

	r = Render(wit.Unrecognized{Tag: "Handle"})
	assert.Equal(t, "unknown", r.Short)
	assert.Equal(t, "unknown", r.Full)
}

func TestRenderWrappers(t *testing.T) {
	tests := []struct {
		name  string
		typ   wit.Typ
		short string
		full  string
	}{
		{"list", wit.List{Elem: wit.Str}, "list<string>", "list<String>"},
		{"nested list", wit.List{Elem: wit.List{Elem: wit.U8}}, "list<list<u8>>", "list<list<u8>>"},
		{"option", wit.Option{Some: wit.Str}, "option<string>", "Option<String>"},
		{"result", wit.Result{Ok: wit.Str, Err: wit.U32}, "result<string, u32>", "Result<String, u32>"},
		{"tuple", wit.Tuple{Elems: []wit.Typ{wit.Str, wit.Bool}}, "tuple<string, bool>", "(String, bool)"},
		{"empty tuple", wit.Tuple{}, "tuple<>", "()"},
		{"list of unknown", wit.List{Elem: wit.Unrecognized{Tag: "Handle"}}, "list<unknown>", "list<unknown>"},
		{"option of absent", wit.Option{}, "option<null>", "Option<null>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Render(tt.typ)
			assert.Equal(t, tt.short, r.Short)
			assert.Equal(t, tt.full, r.Full)
		})
	}
}

// Changing an unrelated sibling type must not change a node's rendering:
// the output is a pure function of the recursively rendered children.
func TestRenderCompositional(t *testing.T) {
	left := wit.List{Elem: wit.Str}

	a := wit.Tuple{Elems: []wit.Typ{left, wit.U32}}
	b := wit.Tuple{Elems: []wit.Typ{left, wit.Bool}}

	// The first element's contribution is identical in both renderings.
	assert.Equal(t, "tuple<list<string>, u32>", Render(a).Short)
	assert.Equal(t, "tuple<list<string>, bool>", Render(b).Short)
}

func TestRenderRecordShort(t *testing.T) {
	rec := wit.Record{Fields: []wit.Field{
		{Name: "a", Typ: wit.Str},
		{Name: "b", Typ: wit.U32},
	}}

	// Short never expands fields.
	assert.Equal(t, "record", Render(rec).Short)
}

func TestRenderRecordFull(t *testing.T) {
	rec := wit.Record{Fields: []wit.Field{
		{Name: "a", Typ: wit.Str},
		{Name: "b", Typ: wit.List{Elem: wit.U32}},
	}}

	expected := "{\n  a: String,\n  b: list<u32>\n}"
	assert.Equal(t, expected, Render(rec).Full)
}

func TestRenderEmptyComposites(t *testing.T) {
	assert.Equal(t, "{}", Render(wit.Record{}).Full)
	assert.Equal(t, "enum { }", Render(wit.Variant{}).Full)
	assert.Equal(t, "enum ( )", Render(wit.Enum{}).Full)
}

func TestRenderVariantCapitalizesCases(t *testing.T) {
	v := wit.Variant{Cases: []wit.Case{
		{Name: "ok", Typ: wit.Str},
		{Name: "none"},
	}}

	r := Render(v)
	assert.Equal(t, "variant", r.Short)
	assert.Contains(t, r.Full, "Ok(String)")
	assert.Contains(t, r.Full, "None()")
	assert.Equal(t, "enum { Ok(String), None() }", r.Full)
}

func TestRenderEnumCapitalizesCases(t *testing.T) {
	e := wit.Enum{Cases: []string{"pending", "done"}}

	r := Render(e)
	assert.Equal(t, "enum", r.Short)
	assert.Contains(t, r.Full, "Pending")
	assert.Contains(t, r.Full, "Done")
	assert.NotContains(t, r.Full, "pending")
	assert.NotContains(t, r.Full, "done")
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"ok", "Ok"},
		{"Ok", "Ok"},
		{"already-kebab", "Already-kebab"},
		{"éclair", "Éclair"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, capitalize(tt.in))
	}
}

func TestRenderNestedRecordGolden(t *testing.T) {
	typ := wit.Record{Fields: []wit.Field{
		{Name: "id", Typ: wit.U64},
		{Name: "name", Typ: wit.Str},
		{Name: "tags", Typ: wit.List{Elem: wit.Str}},
		{Name: "parent", Typ: wit.Option{Some: wit.Str}},
		{Name: "status", Typ: wit.Enum{Cases: []string{"pending", "active", "done"}}},
		{Name: "event", Typ: wit.Variant{Cases: []wit.Case{
			{Name: "created", Typ: wit.U64},
			{Name: "renamed", Typ: wit.Str},
			{Name: "deleted"},
		}}},
		{Name: "address", Typ: wit.Record{Fields: []wit.Field{
			{Name: "street", Typ: wit.Str},
			{Name: "zip", Typ: wit.U32},
		}}},
		{Name: "pos", Typ: wit.Tuple{Elems: []wit.Typ{wit.F64, wit.F64}}},
		{Name: "outcome", Typ: wit.Result{Ok: wit.Str, Err: wit.Str}},
	}}

	require.NoError(t, wit.Validate(typ))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "record_full", []byte(Render(typ).Full))
}
