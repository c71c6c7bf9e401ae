package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	hex, err := Normalize("rebeccapurple")
	require.NoError(t, err)
	assert.Equal(t, "#663399", hex)

	_, err = Normalize("not-a-color")
	assert.Error(t, err)
}

func TestDarken(t *testing.T) {
	darker, err := Darken("#ffffff")
	require.NoError(t, err)
	assert.NotEqual(t, "#ffffff", darker)

	lBefore, err := Luminance("#4E79A7")
	require.NoError(t, err)
	d, err := Darken("#4E79A7")
	require.NoError(t, err)
	lAfter, err := Luminance(d)
	require.NoError(t, err)
	assert.Less(t, lAfter, lBefore)
}

func TestLuminanceCategory(t *testing.T) {
	cat, err := LuminanceCategory("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "bright", cat)

	cat, err = LuminanceCategory("#000000")
	require.NoError(t, err)
	assert.Equal(t, "darker", cat)
}
