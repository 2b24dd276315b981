package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witbench/witbench/internal/wit"
)

func TestReturnTyp(t *testing.T) {
	assert.Nil(t, Function{Name: "ping"}.ReturnTyp())

	fn := Function{Name: "get", Results: []wit.Typ{wit.Str, wit.U32}}
	// Only the first result is used for display.
	assert.Equal(t, wit.Str, fn.ReturnTyp())
}

func TestExportLookup(t *testing.T) {
	c := Component{
		Name: "shopping-cart",
		Exports: []Function{
			{Name: "add-item"},
			{Name: "checkout"},
		},
	}

	fn, ok := c.Export("checkout")
	require.True(t, ok)
	assert.Equal(t, "checkout", fn.Name)

	_, ok = c.Export("missing")
	assert.False(t, ok)
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name     string
		fn       Function
		expected string
	}{
		{
			"no params no result",
			Function{Name: "ping"},
			"ping()",
		},
		{
			"params and result",
			Function{
				Name: "add-item",
				Params: []Param{
					{Name: "item", Typ: wit.Record{Fields: []wit.Field{{Name: "id", Typ: wit.Str}}}},
					{Name: "qty", Typ: wit.U32},
				},
				Results: []wit.Typ{wit.Result{Ok: wit.Str, Err: wit.Str}},
			},
			"add-item(item: record, qty: u32) -> result<string, string>",
		},
		{
			"unrecognized param type",
			Function{
				Name:   "grab",
				Params: []Param{{Name: "h", Typ: wit.Unrecognized{Tag: "Handle"}}},
			},
			"grab(h: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Signature(tt.fn))
		})
	}
}
