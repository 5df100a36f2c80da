// SPDX-License-Identifier: MIT

package capacity

import (
	"github.com/katalvlaran/bosnet/prim_kruskal"
)

// SegmentLoad is the load on one tree segment, seen from its child end.
type SegmentLoad struct {
	Parent  int     `json:"parent"`
	Child   int     `json:"child"`
	LengthM float64 `json:"length_m"`
	Units   int     `json:"units"`
	MW      float64 `json:"mw"`
}

// Segments pairs every segment of tree with the capacity of its child, in
// tree.Segments order. r must have been propagated over the same tree.
// Returns ErrNodeMismatch if the vertex counts or parent links disagree.
// Complexity: O(V).
func Segments(tree *prim_kruskal.Tree, r *Result) ([]SegmentLoad, error) {
	if tree == nil || r == nil || tree.Len() != len(r.Units) {
		return nil, ErrNodeMismatch
	}

	out := make([]SegmentLoad, 0, len(tree.Segments))
	for _, s := range tree.Segments {
		if r.Parent[s.To] != s.From {
			return nil, ErrNodeMismatch
		}
		out = append(out, SegmentLoad{
			Parent:  s.From,
			Child:   s.To,
			LengthM: s.Length,
			Units:   r.Units[s.To],
			MW:      r.MW[s.To],
		})
	}

	return out, nil
}
