// Package prim_kruskal provides Kruskal's MST, the unpenalized baseline tree.
package prim_kruskal

import (
	"math"
	"sort"
)

// edge is a candidate segment i<j.
type edge struct {
	i, j int
	w    float64
}

// Kruskal computes the classical minimum spanning tree of dist and roots it at
// opts' Root (0 by default). The depth penalty in opts is ignored.
//
// Error Conditions:
//   - ErrEmptyMatrix, ErrNonSquare, ErrInvalidDistance: malformed dist.
//   - ErrRootOutOfRange: root ∉ [0, V).
//   - ErrDisconnected: fewer than V−1 finite edges could be joined.
//
// Steps:
//  1. Copy dist; collect every finite edge (i<j) in index order.
//  2. Stable sort by length so equal lengths keep index order.
//  3. Union-find with path compression and union by rank; accept edges joining
//     two components until V−1 edges are taken.
//  4. Re-root the undirected result at the root with an iterative walk so that
//     Parent, Hops and Segments match Prim's conventions (Cost == Length).
//
// Complexity: O(V² log V) time, O(V²) memory.
func Kruskal(dist Matrix, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Candidate edges.
	raw, err := readSquare(dist)
	if err != nil {
		return nil, err
	}
	n := len(raw)
	if o.Root < 0 || o.Root >= n {
		return nil, ErrRootOutOfRange
	}
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !math.IsInf(raw[i][j], 1) {
				edges = append(edges, edge{i: i, j: j, w: raw[i][j]})
			}
		}
	}

	// 2. Deterministic ordering.
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	// 3. Union-find.
	dsu := newDisjointSet(n)
	adj := make([][]int, n)
	taken := 0
	for _, e := range edges {
		if taken == n-1 {
			break
		}
		if dsu.union(e.i, e.j) {
			adj[e.i] = append(adj[e.i], e.j)
			adj[e.j] = append(adj[e.j], e.i)
			taken++
		}
	}
	if taken < n-1 {
		return nil, ErrDisconnected
	}

	// 4. Orient from the root.
	tree := newTree(n, o.Root)
	visited := make([]bool, n)
	visited[o.Root] = true
	queue := []int{o.Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nb := adj[u]
		sort.Ints(nb)
		for _, v := range nb {
			if visited[v] {
				continue
			}
			visited[v] = true
			tree.attach(u, v, raw[u][v], raw[u][v])
			queue = append(queue, v)
		}
	}
	tree.sortAdjacency()

	return tree, nil
}

// disjointSet is a union-find over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the representative of x, compressing the path on the way.
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of a and b. It reports false when they were already joined.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}
