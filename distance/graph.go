// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/bosnet/matrix"
	"github.com/katalvlaran/bosnet/site"
)

// Graph is the complete distance graph of one plant. Immutable after New.
type Graph struct {
	nodes []site.Node
	dist  *matrix.Dense
}

// New builds the distance graph for the substation and generator nodes.
//
// Steps:
//  1. Validate through site.NewPlant (≥1 generator, unique ids, finite data).
//  2. Fix the index order: substation at 0, generators at 1..N.
//  3. Fill the upper triangle with planar distances and mirror it.
//
// Complexity: O(V²).
func New(substation site.Node, nodes []site.Node) (*Graph, error) {
	plant, err := site.NewPlant(substation, nodes)
	if err != nil {
		return nil, err
	}

	return FromPlant(plant)
}

// FromPlant builds the distance graph for an already constructed plant.
// The plant is validated again, so a zero Plant fails with ErrInsufficientNodes.
// Finite positions whose separation overflows float64 fail with
// site.ErrBadPosition.
func FromPlant(plant site.Plant) (*Graph, error) {
	if err := plant.Validate(); err != nil {
		return nil, err
	}

	all := plant.All()
	v := len(all)
	dist, err := matrix.NewDense(v, v)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v; i++ {
		for j := i + 1; j < v; j++ {
			d := planar.Distance(all[i].Position, all[j].Position)
			if math.IsInf(d, 0) {
				return nil, fmt.Errorf("distance: %s to %s: %w", all[i].ID, all[j].ID, site.ErrBadPosition)
			}
			if err := dist.SetSym(i, j, d); err != nil {
				return nil, fmt.Errorf("distance: %s to %s: %w", all[i].ID, all[j].ID, err)
			}
		}
	}

	return &Graph{nodes: all, dist: dist}, nil
}

// Len returns V, the number of vertices including the substation.
func (g *Graph) Len() int { return len(g.nodes) }

// Rows returns V. Together with Cols and At it lets a *Graph be handed to
// prim_kruskal directly.
func (g *Graph) Rows() int { return g.dist.Rows() }

// Cols returns V.
func (g *Graph) Cols() int { return g.dist.Cols() }

// At returns the distance between vertices i and j.
func (g *Graph) At(i, j int) (float64, error) { return g.dist.At(i, j) }

// Distance returns the distance between vertices i and j, or 0 when either index
// is out of range.
func (g *Graph) Distance(i, j int) float64 {
	d, err := g.dist.At(i, j)
	if err != nil {
		return 0
	}

	return d
}

// Node returns the node stored at index i.
func (g *Graph) Node(i int) site.Node { return g.nodes[i] }

// Nodes returns a copy of the node list in index order.
func (g *Graph) Nodes() []site.Node {
	out := make([]site.Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Matrix returns a copy of the underlying distance matrix.
func (g *Graph) Matrix() *matrix.Dense { return g.dist.Clone() }

// ToRows returns the distances as a fresh [][]float64.
func (g *Graph) ToRows() [][]float64 { return g.dist.ToRows() }
