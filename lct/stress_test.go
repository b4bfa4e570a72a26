package lct_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/dsu"
	"github.com/katalvlaran/linkcut/lct"
)

// oracle mirrors a forest with a rollback union-find. Removing edge i rolls
// the union-find back to the mark taken before edge i and replays the edges
// added after it.
type oracle struct {
	d     *dsu.DSU
	edges [][2]int
	marks []int // marks[i] is the snapshot taken just before edges[i]
}

func newOracle(t testing.TB, n int) *oracle {
	d, err := dsu.New(n)
	require.NoError(t, err)

	return &oracle{d: d}
}

func (o *oracle) link(u, v int) {
	o.marks = append(o.marks, o.d.Snapshot())
	o.d.Union(u, v)
	o.edges = append(o.edges, [2]int{u, v})
}

func (o *oracle) cut(i int) {
	rest := append([][2]int(nil), o.edges[i+1:]...)
	_ = o.d.Rollback(o.marks[i])
	o.edges, o.marks = o.edges[:i], o.marks[:i]
	for _, e := range rest {
		o.link(e[0], e[1])
	}
}

func (o *oracle) hasEdge(u, v int) bool {
	for _, e := range o.edges {
		if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
			return true
		}
	}

	return false
}

// requireSameConnectivity compares every pair against the oracle.
func requireSameConnectivity(t *testing.T, f *lct.Forest, o *oracle, step int) {
	t.Helper()
	n := f.Len()
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			got, err := f.Connected(u, v)
			require.NoError(t, err)
			require.Equal(t, o.d.Connected(u, v), got, "step %d: Connected(%d,%d)", step, u, v)
		}
	}
}

// runStress drives random precondition-respecting link/cut/make-root sequences
// and cross-checks the forest against the oracle after every step.
func runStress(t *testing.T, n, steps int, seed int64, opts ...lct.Option) {
	r := rand.New(rand.NewSource(seed))
	f, err := lct.New(n, opts...)
	require.NoError(t, err)
	o := newOracle(t, n)

	for step := 0; step < steps; step++ {
		u, v := r.Intn(n), r.Intn(n)
		switch op := r.Intn(10); {
		case op < 5 && u != v && !o.d.Connected(u, v):
			require.NoError(t, f.Link(u, v), "step %d: Link(%d,%d)", step, u, v)
			o.link(u, v)
		case op < 8 && len(o.edges) > 0:
			i := r.Intn(len(o.edges))
			a, b := o.edges[i][0], o.edges[i][1]
			if r.Intn(2) == 0 {
				a, b = b, a // either orientation names the edge
			}
			require.NoError(t, f.Cut(a, b), "step %d: Cut(%d,%d)", step, a, b)
			o.cut(i)
		default:
			require.NoError(t, f.MakeRoot(u))
			root, err := f.FindRoot(v)
			require.NoError(t, err)
			require.Equal(t, o.d.Connected(u, v), root == u, "step %d: FindRoot(%d) after MakeRoot(%d)", step, v, u)
		}

		require.NoError(t, f.Validate(), "step %d", step)
		requireSameConnectivity(t, f, o, step)
	}
}

// TestStress_Checked cross-checks the default (checked) forest for several sizes.
func TestStress_Checked(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 13, 20} {
		runStress(t, n, 400, int64(n))
	}
}

// TestStress_Unchecked does the same with precondition checks disabled.
func TestStress_Unchecked(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		runStress(t, 20, 600, seed, lct.WithUnchecked())
	}
}

// TestStress_HasEdgeAndRejections compares HasEdge with the oracle's edge list
// and verifies that invalid Link/Cut calls are rejected without side effects.
func TestStress_HasEdgeAndRejections(t *testing.T) {
	const n = 12
	r := rand.New(rand.NewSource(99))
	f, err := lct.New(n)
	require.NoError(t, err)
	o := newOracle(t, n)

	for step := 0; step < 500; step++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		joined := o.d.Connected(u, v)
		edge := o.hasEdge(u, v)

		got, err := f.HasEdge(u, v)
		require.NoError(t, err)
		require.Equal(t, edge, got, "step %d: HasEdge(%d,%d)", step, u, v)

		switch {
		case edge:
			require.NoError(t, f.Cut(u, v))
			for i, e := range o.edges {
				if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
					o.cut(i)
					break
				}
			}
		case joined:
			require.ErrorIs(t, f.Link(u, v), lct.ErrAlreadyConnected)
			require.ErrorIs(t, f.Cut(u, v), lct.ErrNotAnEdge)
		default:
			require.ErrorIs(t, f.Cut(u, v), lct.ErrNotAnEdge)
			require.NoError(t, f.Link(u, v))
			o.link(u, v)
		}

		require.NoError(t, f.Validate(), "step %d", step)
		requireSameConnectivity(t, f, o, step)
	}
}

// TestStress_LongPath builds a long path, which forces deep splay trees, and
// then cuts it into pieces from the middle outwards.
func TestStress_LongPath(t *testing.T) {
	const n = 2000
	f, err := lct.New(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, f.Link(i, i+1))
	}
	ok, err := f.Connected(0, n-1)
	require.NoError(t, err)
	require.True(t, ok)

	for _, i := range []int{n / 2, n / 4, 3 * n / 4, 1, n - 2} {
		require.NoError(t, f.Cut(i, i+1))
	}
	require.NoError(t, f.Validate())

	pairs := []struct {
		u, v int
		want bool
	}{
		{0, 1, true}, {1, 2, false}, {2, n / 4, true}, {n / 4, n/4 + 1, false},
		{n/4 + 1, n / 2, true}, {n / 2, n/2 + 1, false}, {n - 2, n - 1, false}, {0, n - 1, false},
	}
	for _, p := range pairs {
		got, err := f.Connected(p.u, p.v)
		require.NoError(t, err)
		require.Equal(t, p.want, got, "Connected(%d,%d)", p.u, p.v)
	}
}
