package capacity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bosnet/capacity"
	"github.com/katalvlaran/bosnet/matrix"
	"github.com/katalvlaran/bosnet/prim_kruskal"
	"github.com/katalvlaran/bosnet/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// homogeneous returns a substation plus n turbines of the given rating.
func homogeneous(n int, rating float64) []site.Node {
	nodes := []site.Node{site.NewSubstation("SUB", 0, 0)}
	for i := 1; i <= n; i++ {
		nodes = append(nodes, site.NewNode("T", float64(i), 0, site.Wind, rating))
	}

	return nodes
}

// undirected turns an edge list into a symmetric adjacency.
func undirected(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return adj
}

//----------------------------------------------------------------------------//
// Known trees
//----------------------------------------------------------------------------//

// TestPropagate_BranchedTree:
//
//	0 ── 1 ── 2 ── 3
//	     │    └─── 4
//	     5
//
// Units: 3→1, 4→1, 2→3, 5→1, 1→5, root→5.
func TestPropagate_BranchedTree(t *testing.T) {
	adj := undirected(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {1, 5}})
	res, err := capacity.Propagate(adj, homogeneous(5, 2.5))
	require.NoError(t, err)

	assert.Equal(t, []int{5, 5, 3, 1, 1, 1}, res.Units)
	assert.Equal(t, []int{-1, 0, 1, 2, 2, 1}, res.Parent)
	assert.Equal(t, []int{3, 4, 5}, res.Leaves())
	assert.Equal(t, 5, res.Generators())
	assert.InDelta(t, 12.5, res.TotalMW(), 1e-12)
	for v := 1; v < 6; v++ {
		assert.InDelta(t, float64(res.Units[v])*2.5, res.MW[v], 1e-12, "homogeneous MW = units × rating")
	}

	// children-first order
	pos := make(map[int]int, len(res.Order))
	for i, v := range res.Order {
		pos[v] = i
	}
	for v, p := range res.Parent {
		if p >= 0 {
			assert.Less(t, pos[v], pos[p], "child %d must precede parent %d", v, p)
		}
	}
}

// TestPropagate_MixedTechnologies sizes each segment at its child's own rating
// and keeps the physical sum separately.
func TestPropagate_MixedTechnologies(t *testing.T) {
	nodes := []site.Node{
		site.NewSubstation("SUB", 0, 0),
		site.NewNode("T1", 1, 0, site.Wind, 3),
		site.NewNode("PV1", 2, 0, site.Solar, 1.5),
		site.NewNode("B1", 3, 0, site.Storage, 0.5),
	}
	adj := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := capacity.Propagate(adj, nodes)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3, 2, 1}, res.Units)
	assert.InDeltaSlice(t, []float64{5, 9, 3, 0.5}, res.MW, 1e-12)
	assert.InDeltaSlice(t, []float64{5, 5, 2, 0.5}, res.DownstreamMW, 1e-12)
	assert.InDelta(t, 5, res.TotalMW(), 1e-12)
}

// TestPropagate_SolarOverStorage: a 1.5 MW inverter feeding through from a
// 0.5 MW battery is sized for two 1.5 MW units, not for 2 MW.
func TestPropagate_SolarOverStorage(t *testing.T) {
	nodes := []site.Node{
		site.NewSubstation("SUB", 0, 0),
		site.NewNode("PV1", 1, 0, site.Solar, 1.5),
		site.NewNode("B1", 2, 0, site.Storage, 0.5),
	}
	res, err := capacity.Propagate(undirected(3, [][2]int{{0, 1}, {1, 2}}), nodes)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 1}, res.Units)
	assert.InDelta(t, 3.0, res.MW[1], 1e-12)
	assert.InDelta(t, 0.5, res.MW[2], 1e-12)
	assert.InDelta(t, 2.0, res.DownstreamMW[1], 1e-12)
}

// TestPropagate_SingleGenerator: root and generator both have degree 1; only the
// generator is a leaf.
func TestPropagate_SingleGenerator(t *testing.T) {
	res, err := capacity.Propagate(undirected(2, [][2]int{{0, 1}}), homogeneous(1, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Units)
	assert.Equal(t, []int{1}, res.Leaves())
}

// TestPropagate_NonZeroRoot roots the same path at its far end.
func TestPropagate_NonZeroRoot(t *testing.T) {
	nodes := homogeneous(2, 1)
	nodes[0], nodes[2] = nodes[2], nodes[0]
	res, err := capacity.Propagate(undirected(3, [][2]int{{0, 1}, {1, 2}}), nodes, capacity.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, res.Units)
}

//----------------------------------------------------------------------------//
// Properties over Prim trees
//----------------------------------------------------------------------------//

// TestPropagate_PrimTreeProperties checks leaf units, the root total and the
// 1 + Σ children recurrence on random plants, and determinism across calls.
func TestPropagate_PrimTreeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 1; n <= 30; n++ {
		pts := make([][]float64, n+1)
		nodes := homogeneous(n, 2)
		for i := range pts {
			pts[i] = []float64{r.Float64() * 500, r.Float64() * 500}
		}
		rows := make([][]float64, n+1)
		for i := range rows {
			rows[i] = make([]float64, n+1)
			for j := range rows[i] {
				dx, dy := pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]
				rows[i][j] = dx*dx + dy*dy // any non-negative table yields a valid tree
			}
		}
		m, err := matrix.FromRows(rows)
		require.NoError(t, err)
		tree, err := prim_kruskal.Prim(m, prim_kruskal.WithDepthPenalty(0.1))
		require.NoError(t, err)

		res, err := capacity.Propagate(tree.Adjacency, nodes)
		require.NoError(t, err)

		assert.Equal(t, tree.Parent, res.Parent)
		assert.Equal(t, n, res.Units[0], "substation carries every unit")
		intoRoot := 0
		for _, c := range tree.Children(0) {
			intoRoot += res.Units[c]
		}
		assert.Equal(t, n, intoRoot)
		for _, leaf := range tree.Leaves() {
			assert.Equal(t, 1, res.Units[leaf])
		}
		for v := 1; v <= n; v++ {
			sum := 1
			for _, c := range tree.Children(v) {
				sum += res.Units[c]
			}
			assert.Equal(t, sum, res.Units[v])
		}

		again, err := capacity.Propagate(tree.Adjacency, nodes)
		require.NoError(t, err)
		assert.Equal(t, res, again)
	}
}

//----------------------------------------------------------------------------//
// Structural errors
//----------------------------------------------------------------------------//

func TestPropagate_StructuralErrors(t *testing.T) {
	nodes4 := homogeneous(3, 1)
	cases := []struct {
		name string
		adj  [][]int
	}{
		{"Cycle", undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 0}})},
		{"CycleWithExtraEdge", undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})},
		{"Disconnected", undirected(4, [][2]int{{0, 1}, {2, 3}})},
		{"Asymmetric", [][]int{{1}, {0, 2}, {1, 3}, {}}},
		{"SelfLoop", [][]int{{0, 1}, {0}, {3}, {2}}},
		{"OutOfRange", [][]int{{1}, {0, 9}, {}, {}}},
		{"Duplicate", [][]int{{1, 1}, {0, 0}, {3}, {2}}},
		{"Empty", [][]int{{}, {}, {}, {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := capacity.Propagate(tc.adj, nodes4)
			require.ErrorIs(t, err, capacity.ErrStructural)
			var se *capacity.StructuralError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestPropagate_InputErrors(t *testing.T) {
	_, err := capacity.Propagate(nil, nil)
	assert.ErrorIs(t, err, capacity.ErrNodeMismatch)

	_, err = capacity.Propagate(undirected(2, [][2]int{{0, 1}}), homogeneous(2, 1))
	assert.ErrorIs(t, err, capacity.ErrNodeMismatch)

	_, err = capacity.Propagate(undirected(2, [][2]int{{0, 1}}), homogeneous(1, 1), capacity.WithRoot(5))
	assert.ErrorIs(t, err, capacity.ErrRootOutOfRange)
}

//----------------------------------------------------------------------------//
// Segment loads
//----------------------------------------------------------------------------//

func TestSegments_FollowTreeOrder(t *testing.T) {
	// SUB(0) - A(1) - B(2) on a line, C(3) hanging off SUB.
	dist, err := matrix.FromRows([][]float64{
		{0, 10, 20, 15},
		{10, 0, 10, 25},
		{20, 10, 0, 35},
		{15, 25, 35, 0},
	})
	require.NoError(t, err)
	tree, err := prim_kruskal.Prim(dist)
	require.NoError(t, err)

	res, err := capacity.Propagate(tree.Adjacency, homogeneous(3, 2), capacity.WithRoot(tree.Root))
	require.NoError(t, err)

	loads, err := capacity.Segments(tree, res)
	require.NoError(t, err)
	require.Len(t, loads, 3)
	for i, s := range tree.Segments {
		assert.Equal(t, s.From, loads[i].Parent)
		assert.Equal(t, s.To, loads[i].Child)
		assert.Equal(t, s.Length, loads[i].LengthM)
	}
	byChild := map[int]capacity.SegmentLoad{}
	for _, l := range loads {
		byChild[l.Child] = l
	}
	assert.Equal(t, 2, byChild[1].Units)
	assert.InDelta(t, 4, byChild[1].MW, 1e-12)
	assert.Equal(t, 1, byChild[2].Units)
	assert.Equal(t, 1, byChild[3].Units)

	_, err = capacity.Segments(tree, &capacity.Result{Units: []int{1}})
	assert.ErrorIs(t, err, capacity.ErrNodeMismatch)
	_, err = capacity.Segments(nil, res)
	assert.ErrorIs(t, err, capacity.ErrNodeMismatch)
}
