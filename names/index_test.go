package names_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/idgen"
	"github.com/katalvlaran/poset/names"
)

func TestIndex_BindLookupUnbind(t *testing.T) {
	x := names.NewIndex()
	require.Equal(t, idgen.Invalid, x.Lookup("a"))

	require.NoError(t, x.Bind("a", 10))
	require.NoError(t, x.Bind("", 11), "empty string is an ordinary name")
	require.ErrorIs(t, x.Bind("a", 12), names.ErrNameTaken)

	require.Equal(t, idgen.ElementID(10), x.Lookup("a"))
	require.Equal(t, idgen.ElementID(11), x.Lookup(""))
	name, ok := x.Name(10)
	require.True(t, ok)
	require.Equal(t, "a", name)
	require.Equal(t, 2, x.Len())
	require.Equal(t, []string{"", "a"}, x.Names())

	require.Equal(t, idgen.ElementID(10), x.Unbind("a"))
	require.Equal(t, idgen.Invalid, x.Unbind("a"))
	require.Equal(t, idgen.Invalid, x.Lookup("a"))
	_, ok = x.Name(10)
	require.False(t, ok)
}

func TestIndex_BindSameIDTwicePanics(t *testing.T) {
	x := names.NewIndex()
	require.NoError(t, x.Bind("a", 1))
	require.Panics(t, func() { _ = x.Bind("b", 1) })
}

func TestIndex_Reset(t *testing.T) {
	x := names.NewIndex()
	require.NoError(t, x.Bind("a", 1))
	require.NoError(t, x.Bind("b", 2))
	x.Reset()
	require.Zero(t, x.Len())
	require.Empty(t, x.Names())
	require.NoError(t, x.Bind("a", 3))
}
