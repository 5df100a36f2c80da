// Package prim_kruskal provides the depth-penalized Prim used to grow collection trees.
package prim_kruskal

import "math"

// Prim grows a spanning tree from the root over the dense distance matrix,
// penalizing edges that leave already-deep vertices.
//
// Hops count from the root at 0, so edges leaving the substation are never
// penalized and a first-level generator attaches its children at 1 + w. Schemes
// that count the root as depth 1 penalize every edge and grow different trees
// for the same w.
//
// Error Conditions:
//   - ErrEmptyMatrix, ErrNonSquare, ErrInvalidDistance: malformed dist.
//   - ErrNegativePenalty: opts carry w < 0 or a non-finite w.
//   - ErrRootOutOfRange: root ∉ [0, V).
//   - ErrDisconnected: some vertex is unreachable through finite entries.
//
// Steps:
//  1. Validate options and copy dist into raw[][].
//  2. Initialize key[v]=+Inf, parent[v]=-1, key[root]=0, cost[][] = raw[][].
//  3. Repeat V times:
//     a. pick untreed u with minimal key (lowest index on ties);
//     b. mark u in-tree, attach it under parent[u] (hops = parent's hops + 1);
//     c. for every untreed v: cost[u][v] = raw[u][v]·(1 + hops[u]·w);
//     if cost[u][v] < key[v] then key[v], parent[v] = cost[u][v], u.
//  4. Sort adjacency lists and return the tree.
//
// Complexity: O(V²) time, O(V²) memory.
func Prim(dist Matrix, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validatePenalty(o.DepthPenalty); err != nil {
		return nil, err
	}

	// 1. Raw distances; they stay untouched for the whole run.
	raw, err := readSquare(dist)
	if err != nil {
		return nil, err
	}
	n := len(raw)
	if o.Root < 0 || o.Root >= n {
		return nil, ErrRootOutOfRange
	}

	// 2. Prim state plus the penalized cost table.
	key := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	cost := make([][]float64, n)
	for v := 0; v < n; v++ {
		key[v] = math.Inf(1)
		parent[v] = -1
		cost[v] = append([]float64(nil), raw[v]...)
	}
	key[o.Root] = 0
	tree := newTree(n, o.Root)

	// 3. Grow the tree one vertex at a time.
	for it := 0; it < n; it++ {
		// (a) cheapest untreed vertex; strict "<" keeps the lowest index on ties
		u, best := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && key[v] < best {
				u, best = v, key[v]
			}
		}
		if u < 0 {
			return nil, ErrDisconnected
		}

		// (b) join the tree
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			tree.attach(p, u, raw[p][u], key[u])
		}

		// (c) relax with the depth-inflated cost out of u
		factor := 1 + float64(tree.Hops[u])*o.DepthPenalty
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			cost[u][v] = raw[u][v] * factor
			if cost[u][v] < key[v] {
				key[v] = cost[u][v]
				parent[v] = u
			}
		}
	}

	// 4. Deterministic neighbour order.
	tree.sortAdjacency()

	return tree, nil
}
