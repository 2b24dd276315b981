package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadComponentByExtension(t *testing.T) {
	for _, path := range []string{
		"testdata/cart.json",
		"testdata/cart.yaml",
		"testdata/cart.cue",
	} {
		t.Run(path, func(t *testing.T) {
			c, err := LoadComponent(path)
			require.NoError(t, err)
			assert.Equal(t, "shopping-cart", c.Name)
			assert.Equal(t, "0.3.1", c.Version)
			assert.NotEmpty(t, c.Exports)

			_, ok := c.Export("add-item")
			assert.True(t, ok)
		})
	}
}

func TestLoadComponentMissingFile(t *testing.T) {
	_, err := LoadComponent("testdata/nope.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadComponentDecodeFailure(t *testing.T) {
	path := writeTempFile(t, "bad.json", `{"name": "c", "exports": [{`)

	_, err := LoadComponent(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeDecodeFailed, loadErr.Code)
}

func TestLoadComponentBadExtension(t *testing.T) {
	path := writeTempFile(t, "cart.toml", `name = "shopping-cart"`)

	_, err := LoadComponent(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeBadFormat, loadErr.Code)
}

func TestLookupExportUnknown(t *testing.T) {
	c, err := LoadComponent("testdata/cart.json")
	require.NoError(t, err)

	_, err = lookupExport(c, "refund")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeUnknownExport, loadErr.Code)
	assert.Contains(t, err.Error(), "refund")
}
