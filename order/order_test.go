package order_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/order"
	"github.com/katalvlaran/poset/registry"
)

// build creates a poset from names and (lower, upper) pairs and returns its view.
func build(t *testing.T, names []string, pairs ...[2]string) *registry.View {
	t.Helper()
	r := registry.New()
	p := r.New()
	for _, n := range names {
		require.NoError(t, r.Insert(p, n))
	}
	for _, pr := range pairs {
		require.NoError(t, r.Add(p, pr[0], pr[1]))
	}
	v, err := r.View(p)
	require.NoError(t, err)

	return v
}

// mapRelation is a hand-built Relation, used to feed inputs a registry
// would never produce.
type mapRelation struct {
	names []string
	succ  map[string][]string
}

func (m mapRelation) Elements() []string              { return m.names }
func (m mapRelation) Successors(name string) []string { return m.succ[name] }

// position returns the index of v in order or -1.
func position(order []string, v string) int {
	for i, s := range order {
		if s == v {
			return i
		}
	}
	return -1
}

func TestLinearExtension_Deterministic(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		pairs [][2]string
		want  []string
	}{
		{"empty", nil, nil, []string{}},
		{"antichain", []string{"c", "a", "b"}, nil, []string{"a", "b", "c"}},
		{"chain", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}}, []string{"a", "b", "c"}},
		{"reversed", []string{"a", "b"}, [][2]string{{"b", "a"}}, []string{"b", "a"}},
		{"diamond", []string{"a", "b", "c", "d"},
			[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			[]string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := build(t, tc.names, tc.pairs...)
			got, err := order.LinearExtension(v)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinearExtension_RespectsClosure(t *testing.T) {
	v := build(t,
		[]string{"z", "y", "x", "w", "v", "u"},
		[2]string{"z", "x"}, [2]string{"x", "u"}, [2]string{"y", "w"}, [2]string{"w", "u"}, [2]string{"v", "y"},
	)
	got, err := order.LinearExtension(v)
	require.NoError(t, err)
	require.Len(t, got, v.Size())
	for _, a := range v.Elements() {
		for _, b := range v.Successors(a) {
			if a != b {
				require.Less(t, position(got, a), position(got, b), "%s < %s", a, b)
			}
		}
	}
}

func TestLinearExtension_Errors(t *testing.T) {
	_, err := order.LinearExtension(nil)
	require.ErrorIs(t, err, order.ErrNilRelation)

	cyc := mapRelation{
		names: []string{"a", "b"},
		succ:  map[string][]string{"a": {"a", "b"}, "b": {"a", "b"}},
	}
	_, err = order.LinearExtension(cyc)
	require.ErrorIs(t, err, order.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = order.LinearExtension(build(t, []string{"a"}), order.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCovers(t *testing.T) {
	v := build(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "d"})
	got, err := order.Covers(v)
	require.NoError(t, err)
	want := []order.Pair{{Lower: "a", Upper: "b"}, {Lower: "a", Upper: "d"}, {Lower: "b", Upper: "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("covers (-want +got):\n%s", diff)
	}

	_, err = order.Covers(nil)
	require.ErrorIs(t, err, order.ErrNilRelation)
}

// TestCovers_MatchDel checks that the cover pairs are exactly the pairs Del
// accepts.
func TestCovers_MatchDel(t *testing.T) {
	r := registry.New()
	p := r.New()
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, r.Insert(p, n))
	}
	for _, pr := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "d"}, {"d", "c"}, {"c", "e"}} {
		require.NoError(t, r.Add(p, pr[0], pr[1]))
	}
	v, err := r.View(p)
	require.NoError(t, err)
	covers, err := order.Covers(v)
	require.NoError(t, err)
	isCover := make(map[order.Pair]bool)
	for _, c := range covers {
		isCover[c] = true
	}

	for _, a := range v.Elements() {
		for _, b := range v.Successors(a) {
			if a == b {
				continue
			}
			// Try the deletion on a throwaway copy of the same poset.
			q := r.New()
			for _, n := range v.Elements() {
				require.NoError(t, r.Insert(q, n))
			}
			for _, x := range v.Elements() {
				for _, y := range v.Successors(x) {
					if x != y {
						_ = r.Add(q, x, y)
					}
				}
			}
			err := r.Del(q, a, b)
			require.Equal(t, isCover[order.Pair{Lower: a, Upper: b}], err == nil, "del(%s,%s): %v", a, b, err)
			require.NoError(t, r.Delete(q))
		}
	}
}

func TestMinimalMaximal(t *testing.T) {
	v := build(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"c", "b"})
	minimal, err := order.Minimal(v)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c", "d"}, minimal)
	maximal, err := order.Maximal(v)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "d"}, maximal)

	_, err = order.Minimal(nil)
	require.ErrorIs(t, err, order.ErrNilRelation)
	_, err = order.Maximal(nil)
	require.ErrorIs(t, err, order.ErrNilRelation)
}

func TestNilView(t *testing.T) {
	var v *registry.View

	_, err := order.LinearExtension(v)
	require.ErrorIs(t, err, order.ErrNilRelation)
	_, err = order.Covers(v)
	require.ErrorIs(t, err, order.ErrNilRelation)
	_, err = order.Minimal(v)
	require.ErrorIs(t, err, order.ErrNilRelation)
	_, err = order.Maximal(v)
	require.ErrorIs(t, err, order.ErrNilRelation)
}
