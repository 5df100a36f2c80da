// SPDX-License-Identifier: MIT

// Package collection runs the full collection-network design for a plant:
//
//	site.Plant ─► distance.Graph ─► prim_kruskal.Tree ─► capacity.Result ─► cable.Selection
//
// A Designer is immutable and safe for concurrent use; every Design call owns
// its graph, tree and capacity instances. Sweep evaluates several depth
// penalties in parallel and returns results in input order.
//
// Each run gets a RunID (UUID v4) that tags its log lines, so interleaved sweep
// output can be separated afterwards.
package collection
