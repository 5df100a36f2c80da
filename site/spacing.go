// SPDX-License-Identifier: MIT

package site

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SpacingViolation is a pair of nodes closer together than the requested minimum.
type SpacingViolation struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Distance float64 `json:"distance_m"`
}

// spatialNode adapts a Node for the R-tree.
type spatialNode struct {
	idx  int
	node Node
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *spatialNode) Bounds() rtreego.Rect { return s.rect }

// pointTolerance is the half-size of the degenerate rectangle used for points.
const pointTolerance = 1e-9

// SpacingViolations returns every pair of nodes (substation included) whose
// distance is strictly below minSpacing, ordered by input index of A then B.
// A non-positive minSpacing disables the check.
//
// Coincident units are legal for the tree builder (a zero-length segment) but are
// almost always a data-entry mistake, so callers usually log the result.
// Complexity: O(V log V + K) expected, K = number of candidate pairs.
func (p Plant) SpacingViolations(minSpacing float64) []SpacingViolation {
	if minSpacing <= 0 {
		return nil
	}
	all := p.All()

	// 1. Index every node as a tiny rectangle.
	entries := make([]rtreego.Spatial, len(all))
	for i, n := range all {
		entries[i] = &spatialNode{
			idx:  i,
			node: n,
			rect: rtreego.Point{n.Position.X(), n.Position.Y()}.ToRect(pointTolerance),
		}
	}
	tree := rtreego.NewTree(2, 25, 50, entries...)

	// 2. For each node, query the square of side 2·minSpacing around it and keep
	//    true Euclidean hits with a higher index (each pair once).
	var out []SpacingViolation
	for i, n := range all {
		query, err := rtreego.NewRect(
			rtreego.Point{n.Position.X() - minSpacing, n.Position.Y() - minSpacing},
			[]float64{2 * minSpacing, 2 * minSpacing},
		)
		if err != nil {
			continue
		}
		hits := tree.SearchIntersect(query)
		sort.Slice(hits, func(a, b int) bool {
			return hits[a].(*spatialNode).idx < hits[b].(*spatialNode).idx
		})
		for _, h := range hits {
			other := h.(*spatialNode)
			if other.idx <= i {
				continue
			}
			d := distance(n.Position, other.node.Position)
			if d < minSpacing {
				out = append(out, SpacingViolation{A: n.ID, B: other.node.ID, Distance: d})
			}
		}
	}

	return out
}

func distance(a, b orb.Point) float64 { return planar.Distance(a, b) }
