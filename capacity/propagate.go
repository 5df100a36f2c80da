// SPDX-License-Identifier: MIT

package capacity

import (
	"github.com/katalvlaran/bosnet/site"
)

// Result holds the per-vertex capacity of a rooted collection tree.
type Result struct {
	Root int `json:"root"`
	// Parent[v] is v's parent, -1 for the root.
	Parent []int `json:"parent"`
	// Order lists vertices children-first (a valid post-order).
	Order []int `json:"order"`
	// Units[v] is the number of generation units fed through the segment into v.
	Units []int `json:"units"`
	// MW[v] is the segment rating into v: Units[v] × rating(v). At the root it
	// equals DownstreamMW[root].
	MW []float64 `json:"mw"`
	// DownstreamMW[v] is rating(v) plus the ratings of every vertex below v.
	DownstreamMW []float64 `json:"downstream_mw"`
}

// Options configures Propagate.
type Options struct {
	Root int
}

// Option mutates Options.
type Option func(*Options)

// WithRoot selects the root vertex (default 0, the substation).
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// Propagate computes unit and MW capacities for every vertex of the tree given by
// the undirected adjacency adj. nodes[i] supplies the rating of vertex i; the root
// contributes no unit and no power of its own. A segment is sized for Units[v]
// units of v's own technology, so on a mixed feeder MW[v] may differ from the
// physical sum kept in DownstreamMW[v].
//
// Steps:
//  1. Check shapes, neighbour ranges, self-loops, symmetry and |E| = V−1.
//  2. Orient: iterative DFS from the root records Parent and a pre-order; a
//     neighbour seen twice is a cycle, a vertex never reached is a disconnection.
//  3. Accumulate in reverse pre-order (children before parents).
//
// Complexity: O(V) time and memory.
func Propagate(adj [][]int, nodes []site.Node, opts ...Option) (*Result, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	n := len(adj)
	if n == 0 || len(nodes) != n {
		return nil, ErrNodeMismatch
	}
	if o.Root < 0 || o.Root >= n {
		return nil, ErrRootOutOfRange
	}

	// 1. Structural checks.
	if err := checkEdges(adj); err != nil {
		return nil, err
	}

	// 2. Orient the tree.
	parent, order, err := orient(adj, o.Root)
	if err != nil {
		return nil, err
	}

	// 3. Bottom-up accumulation.
	res := &Result{
		Root:   o.Root,
		Parent: parent,
		Order:  make([]int, 0, n),
		Units:  make([]int, n),
		MW:     make([]float64, n),

		DownstreamMW: make([]float64, n),
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if v != o.Root {
			res.Units[v]++
			res.DownstreamMW[v] += nodes[v].RatingMW
			res.MW[v] = float64(res.Units[v]) * nodes[v].RatingMW
			p := parent[v]
			res.Units[p] += res.Units[v]
			res.DownstreamMW[p] += res.DownstreamMW[v]
		}
		res.Order = append(res.Order, v)
	}
	res.MW[o.Root] = res.DownstreamMW[o.Root]

	return res, nil
}

// checkEdges validates neighbour indices, self-loops, symmetry and the edge count.
func checkEdges(adj [][]int) error {
	n := len(adj)
	seen := make(map[[2]int]int, n)
	degreeSum := 0
	for u, nb := range adj {
		for _, w := range nb {
			if w < 0 || w >= n {
				return structural(u, "neighbour %d out of range", w)
			}
			if w == u {
				return structural(u, "self-loop")
			}
			seen[[2]int{u, w}]++
			if seen[[2]int{u, w}] > 1 {
				return structural(u, "duplicate edge to %d", w)
			}
			degreeSum++
		}
	}
	for e := range seen {
		if seen[[2]int{e[1], e[0]}] == 0 {
			return structural(e[0], "edge to %d is not mirrored", e[1])
		}
	}
	if degreeSum != 2*(n-1) {
		return structural(0, "tree on %d vertices needs %d edges, got %d", n, n-1, degreeSum/2)
	}

	return nil
}

// orient walks the tree from root and returns parent pointers and a pre-order.
// Each vertex is pushed at most once.
func orient(adj [][]int, root int) ([]int, []int, error) {
	n := len(adj)
	parent := make([]int, n)
	visited := make([]bool, n)
	for v := range parent {
		parent[v] = -1
	}

	order := make([]int, 0, n)
	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, w := range adj[u] {
			if w == parent[u] {
				continue
			}
			if visited[w] {
				return nil, nil, structural(w, "reached twice (cycle)")
			}
			visited[w] = true
			parent[w] = u
			stack = append(stack, w)
		}
	}
	for v, ok := range visited {
		if !ok {
			return nil, nil, structural(v, "not connected to root %d", root)
		}
	}

	return parent, order, nil
}

// Leaves returns the vertices without children, root excluded, ascending.
func (r *Result) Leaves() []int {
	hasChild := make([]bool, len(r.Parent))
	for v, p := range r.Parent {
		if p >= 0 && v != r.Root {
			hasChild[p] = true
		}
	}
	var out []int
	for v := range r.Parent {
		if v != r.Root && !hasChild[v] {
			out = append(out, v)
		}
	}

	return out
}

// Generators returns N, the number of units collected at the root.
func (r *Result) Generators() int { return r.Units[r.Root] }

// TotalMW returns the plant rating collected at the root.
func (r *Result) TotalMW() float64 { return r.DownstreamMW[r.Root] }
