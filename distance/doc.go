// SPDX-License-Identifier: MIT

// Package distance builds the complete Euclidean distance graph over a plant.
//
// What:
//
//   - Graph: a dense V×V matrix.Dense of straight-line distances (metres),
//     V = N + 1. Index 0 is always the substation; generators follow at 1..N in
//     the order the site.Plant lists them.
//
// Why:
//
//   - Cable runs are trenched point to point, so the complete graph of
//     pairwise distances is the search space for the collection tree.
//
// Complexity:
//
//   - New: O(V²) time and memory.
//
// Errors:
//
//   - site.ErrInsufficientNodes (as *site.InsufficientNodesError) when no generator is given.
//   - Any site.Plant validation error.
package distance
