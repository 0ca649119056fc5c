package registry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/idgen"
	"github.com/katalvlaran/poset/registry"
)

func TestView_Snapshot(t *testing.T) {
	r := registry.New()
	p := newChain(t, r)
	require.NoError(t, r.Insert(p, NameD))

	v, err := r.View(p)
	require.NoError(t, err)
	require.Equal(t, p, v.ID())
	require.Equal(t, 4, v.Size())
	require.Equal(t, []string{NameA, NameB, NameC, NameD}, v.Elements())

	wantSucc := map[string][]string{
		NameA: {NameA, NameB, NameC},
		NameB: {NameB, NameC},
		NameC: {NameC},
		NameD: {NameD},
	}
	gotSucc := make(map[string][]string)
	for _, n := range v.Elements() {
		gotSucc[n] = v.Successors(n)
	}
	if diff := cmp.Diff(wantSucc, gotSucc); diff != "" {
		t.Fatalf("successors (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{NameA, NameB, NameC}, v.Predecessors(NameC))

	require.True(t, v.Test(NameA, NameC))
	require.False(t, v.Test(NameC, NameA))
	require.False(t, v.Test(NameX, NameA))
	require.True(t, v.Has(NameD))
	require.False(t, v.Has(NameX))
	require.Equal(t, idgen.Invalid, v.ElementID(NameX))
	require.Nil(t, v.Successors(NameX))
}

func TestView_IsDetached(t *testing.T) {
	r := registry.New()
	p := newChain(t, r)
	v, err := r.View(p)
	require.NoError(t, err)

	require.NoError(t, r.Remove(p, NameB))
	require.NoError(t, r.Delete(p))

	require.Equal(t, 3, v.Size())
	require.True(t, v.Test(NameA, NameB))
}

func TestView_NilReadsEmpty(t *testing.T) {
	var v *registry.View

	require.Zero(t, v.ID())
	require.Zero(t, v.Size())
	require.Empty(t, v.Elements())
	require.False(t, v.Has(NameA))
	require.Equal(t, idgen.Invalid, v.ElementID(NameA))
	require.Empty(t, v.Successors(NameA))
	require.Empty(t, v.Predecessors(NameA))
	require.False(t, v.Test(NameA, NameA))
}
