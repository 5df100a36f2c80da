// SPDX-License-Identifier: MIT

// Package capacity computes how much power every segment of a collection tree
// must carry.
//
// What:
//
//   - Propagate roots an undirected tree adjacency at the substation and
//     accumulates, bottom-up, the number of generation units and the MW that
//     flow through each vertex. The segment feeding vertex v (from its parent)
//     carries exactly Units[v] units and MW[v] megawatts.
//
// Invariants of a Result:
//
//   - every leaf (degree 1, not the root) carries 1 unit;
//   - Units[v] = 1 + Σ Units[children(v)] for every generator v;
//   - Units[root] = Σ Units[children(root)] = N, the number of generators;
//   - MW[v] = Units[v] × rating(v), each unit sized at v's own technology;
//   - DownstreamMW[v] = rating(v) + Σ DownstreamMW[children(v)], and
//     MW[root] = DownstreamMW[root] = total plant rating. The two agree on
//     single-technology networks.
//
// Complexity:
//
//   - O(V + E) = O(V): one iterative depth-first walk to orient the tree, one
//     reverse walk to accumulate.
//
// Errors:
//
//   - *StructuralError (matches ErrStructural): the adjacency is not a spanning
//     tree (asymmetric, self-loop, out-of-range neighbour, wrong edge count,
//     cycle, or unreachable vertex). The walk visits each vertex at most once,
//     so malformed input can never make it loop.
//   - ErrNodeMismatch: the node list and adjacency disagree on V.
package capacity
