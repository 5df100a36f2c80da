// SPDX-License-Identifier: MIT

package site

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// Technology labels the kind of equipment sitting on a node.
type Technology string

// Well-known technologies. Any other non-empty label is a valid generator technology.
const (
	// Substation marks the collection root. Exactly one per plant.
	Substation Technology = "substation"
	// Wind is a single wind turbine.
	Wind Technology = "wind"
	// WindSubstation is an aggregated wind farm joining a hybrid network through its own substation.
	WindSubstation Technology = "wind_sub"
	// Solar is a PV inverter station.
	Solar Technology = "solar"
	// Storage is a battery container.
	Storage Technology = "storage"
)

// IsGenerator reports whether t describes a generation unit rather than the substation.
func (t Technology) IsGenerator() bool {
	return t != "" && t != Substation
}

// Node is one point of the collection network.
type Node struct {
	// ID is unique within a plant.
	ID string `json:"id"`
	// Position is the planar location in metres.
	Position orb.Point `json:"position"`
	// Technology is Substation for the root, a generator label otherwise.
	Technology Technology `json:"technology"`
	// RatingMW is the per-unit nameplate rating. Zero for the substation.
	RatingMW float64 `json:"rating_mw"`
}

// NewNode is a convenience constructor for a node at (x, y).
func NewNode(id string, x, y float64, tech Technology, ratingMW float64) Node {
	return Node{ID: id, Position: orb.Point{x, y}, Technology: tech, RatingMW: ratingMW}
}

// NewSubstation returns a substation node at (x, y).
func NewSubstation(id string, x, y float64) Node {
	return Node{ID: id, Position: orb.Point{x, y}, Technology: Substation}
}

// Plant is a substation plus the generator nodes it collects from.
// Index 0 of All() is always the substation; generators keep their input order.
type Plant struct {
	Substation Node
	Nodes      []Node
}

// NewPlant validates and returns a Plant. The nodes slice is copied.
// Complexity: O(N).
func NewPlant(substation Node, nodes []Node) (Plant, error) {
	p := Plant{Substation: substation, Nodes: slices.Clone(nodes)}
	if err := p.Validate(); err != nil {
		return Plant{}, err
	}

	return p, nil
}

// Validate checks the structural preconditions of a design run.
//
// Error priority: generator count -> substation -> per-node (id, duplicate,
// technology, position, rating) in input order.
// Complexity: O(N).
func (p Plant) Validate() error {
	if len(p.Nodes) < 1 {
		return &InsufficientNodesError{Got: len(p.Nodes)}
	}
	if p.Substation.Technology != Substation {
		return nodeErrorf(p.Substation.ID, ErrNotSubstation)
	}
	if p.Substation.ID == "" {
		return ErrEmptyID
	}
	if !finite(p.Substation.Position) {
		return nodeErrorf(p.Substation.ID, ErrBadPosition)
	}

	seen := make(map[string]struct{}, len(p.Nodes)+1)
	seen[p.Substation.ID] = struct{}{}
	for _, n := range p.Nodes {
		if n.ID == "" {
			return ErrEmptyID
		}
		if _, dup := seen[n.ID]; dup {
			return nodeErrorf(n.ID, ErrDuplicateID)
		}
		seen[n.ID] = struct{}{}
		if !n.Technology.IsGenerator() {
			return nodeErrorf(n.ID, ErrSubstationInNodes)
		}
		if !finite(n.Position) {
			return nodeErrorf(n.ID, ErrBadPosition)
		}
		if n.RatingMW <= 0 || math.IsNaN(n.RatingMW) || math.IsInf(n.RatingMW, 0) {
			return nodeErrorf(n.ID, ErrBadRating)
		}
	}

	return nil
}

// Len returns the number of generator nodes N.
func (p Plant) Len() int { return len(p.Nodes) }

// All returns the substation followed by every generator: the index order used by
// every downstream stage.
func (p Plant) All() []Node {
	all := make([]Node, 0, len(p.Nodes)+1)
	all = append(all, p.Substation)

	return append(all, p.Nodes...)
}

// TotalRatingMW is the sum of all generator ratings.
func (p Plant) TotalRatingMW() float64 {
	var total float64
	for _, n := range p.Nodes {
		total += n.RatingMW
	}

	return total
}

// Technologies returns the distinct generator technologies, sorted.
func (p Plant) Technologies() []Technology {
	set := make(map[Technology]struct{})
	for _, n := range p.Nodes {
		set[n.Technology] = struct{}{}
	}
	out := make([]Technology, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	slices.Sort(out)

	return out
}

// Filter returns the sub-plant made of the generators whose technology is listed,
// sharing the same substation. Input order is preserved.
// Returns *InsufficientNodesError when no generator matches.
func (p Plant) Filter(techs ...Technology) (Plant, error) {
	keep := make([]Node, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		if slices.Contains(techs, n.Technology) {
			keep = append(keep, n)
		}
	}
	if len(keep) == 0 {
		return Plant{}, &InsufficientNodesError{Got: 0}
	}

	return Plant{Substation: p.Substation, Nodes: keep}, nil
}

// Extent returns the bounding box of the substation and all generators.
func (p Plant) Extent() orb.Bound {
	b := p.Substation.Position.Bound()
	for _, n := range p.Nodes {
		b = b.Extend(n.Position)
	}

	return b
}

func finite(pt orb.Point) bool {
	for _, v := range pt {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
