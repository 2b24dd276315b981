package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witbench/witbench/internal/value"
	"github.com/witbench/witbench/internal/wit"
)

func TestNewPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		typ      wit.Typ
		expected value.Value
	}{
		{"str", wit.Str, value.String("")},
		{"char", wit.Char, value.String("")},
		{"bool", wit.Bool, value.Bool(false)},
		{"s8", wit.S8, value.Number(0)},
		{"s64", wit.S64, value.Number(0)},
		{"u32", wit.U32, value.Number(0)},
		{"u64", wit.U64, value.Number(0)},
		{"f32", wit.F32, value.Number(0)},
		{"f64", wit.F64, value.Number(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.typ))
		})
	}
}

func TestNewRecordPreservesFieldOrder(t *testing.T) {
	rec := wit.Record{Fields: []wit.Field{
		{Name: "a", Typ: wit.Str},
		{Name: "b", Typ: wit.U32},
	}}

	got := New(rec)
	expected := value.Mapping{
		{Key: "a", Value: value.String("")},
		{Key: "b", Value: value.Number(0)},
	}
	assert.Equal(t, expected, got)
}

func TestNewTuple(t *testing.T) {
	tup := wit.Tuple{Elems: []wit.Typ{wit.Str, wit.Bool}}

	assert.Equal(t, value.Sequence{value.String(""), value.Bool(false)}, New(tup))
}

func TestNewEmptyComposites(t *testing.T) {
	assert.Equal(t, value.Mapping{}, New(wit.Record{}))
	assert.Equal(t, value.Sequence{}, New(wit.Tuple{}))
	assert.Equal(t, value.String(""), New(wit.Enum{}))
	assert.Equal(t, value.Null{}, New(wit.Variant{}))
}

func TestNewListNeverPrePopulates(t *testing.T) {
	got := New(wit.List{Elem: wit.Str})
	assert.Equal(t, value.Sequence{}, got)
	assert.NotEqual(t, value.Sequence{value.String("")}, got)
}

func TestNewOptionIsNull(t *testing.T) {
	assert.Equal(t, value.Null{}, New(wit.Option{Some: wit.Str}))
}

func TestNewEnumIsEmptyString(t *testing.T) {
	// No case pre-selected.
	assert.Equal(t, value.String(""), New(wit.Enum{Cases: []string{"pending", "done"}}))
}

func TestNewFallsBackToNull(t *testing.T) {
	for _, typ := range []wit.Typ{
		nil,
		wit.Result{Ok: wit.Str, Err: wit.Str},
		wit.Variant{Cases: []wit.Case{{Name: "ok", Typ: wit.Str}}},
		wit.Unrecognized{Tag: "Handle"},
	} {
		assert.Equal(t, value.Null{}, New(typ), "%T", typ)
	}
}

func TestNewNested(t *testing.T) {
	typ := wit.Record{Fields: []wit.Field{
		{Name: "items", Typ: wit.List{Elem: wit.Str}},
		{Name: "owner", Typ: wit.Record{Fields: []wit.Field{
			{Name: "name", Typ: wit.Str},
			{Name: "age", Typ: wit.U8},
		}}},
		{Name: "pos", Typ: wit.Tuple{Elems: []wit.Typ{wit.F64, wit.F64}}},
		{Name: "note", Typ: wit.Option{Some: wit.Str}},
	}}

	expected := value.Mapping{
		{Key: "items", Value: value.Sequence{}},
		{Key: "owner", Value: value.Mapping{
			{Key: "name", Value: value.String("")},
			{Key: "age", Value: value.Number(0)},
		}},
		{Key: "pos", Value: value.Sequence{value.Number(0), value.Number(0)}},
		{Key: "note", Value: value.Null{}},
	}
	assert.Equal(t, expected, New(typ))
}

func TestNewDeterministic(t *testing.T) {
	typ := wit.Record{Fields: []wit.Field{
		{Name: "a", Typ: wit.List{Elem: wit.U32}},
		{Name: "b", Typ: wit.Enum{Cases: []string{"x", "y"}}},
	}}

	first := New(typ)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, New(typ))
	}
}
