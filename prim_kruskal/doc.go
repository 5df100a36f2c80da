// Package prim_kruskal grows the cable tree of a collection network over a dense
// distance matrix: a depth-penalized Prim's algorithm rooted at the substation,
// and Kruskal's algorithm as the classical-MST baseline.
//
// What & Why
//
//   - What is built?
//     Given V points (index 0 = substation) and their pairwise distances, a
//     spanning tree T with exactly V−1 segments, connected, acyclic and rooted at
//     the substation. Every segment is a physical cable run.
//
//   - Why a depth penalty?
//     A pure MST minimises total cable length but happily produces long chains
//     ("daisy chains") whose first segments carry the whole chain's power and need
//     heavy, expensive cable. Inflating edge costs by how deep the source vertex
//     already sits biases growth toward star-like topologies.
//
// Algorithms Provided
//
//   - Prim(dist Matrix, opts ...Option) (*Tree, error)
//
//   - Strategy: classical dense Prim. Repeatedly pick the untreed vertex u with
//     the smallest key (ties → lowest index), attach it to its parent and set
//     hops[u] = hops[parent[u]] + 1 (the root has 0 hops). While relaxing edges
//     out of u the penalized cost dist[u][v]·(1 + hops[u]·w) is written into a
//     separate cost table; raw distances are never modified.
//
//   - Complexity: O(V²) time, O(V²) memory for the cost table.
//
//   - With w = 0 the result is a minimum spanning tree.
//
//   - Kruskal(dist Matrix) (*Tree, error)
//
//   - Strategy: stable sort of all finite edges by length, union-find with path
//     compression and union by rank, then re-rooted at the substation.
//
//   - Complexity: O(V² log V).
//
//   - Use-Case: the unpenalized reference tree. Its total length is the floor any
//     penalized Prim tree is compared against.
//
// Error Conditions
//
//   - ErrEmptyMatrix, ErrNonSquare: the distance table has no rows or is not V×V.
//   - ErrInvalidDistance: a NaN or negative off-diagonal entry.
//   - ErrNegativePenalty: w < 0, NaN or ±Inf.
//   - ErrRootOutOfRange: the requested root is not a vertex.
//   - ErrDisconnected: +Inf entries isolate at least one vertex.
//   - ErrUnknownMethod: Compute was asked for something other than MethodPrim or MethodKruskal.
//
// Determinism
//
//   - Prim scans vertices in index order and relaxes with a strict "<", so the
//     earliest candidate wins every tie.
//   - Kruskal uses a stable sort over edges enumerated in (i, j) order.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
