// SPDX-License-Identifier: MIT

// Package site holds the immutable inputs of a collection-network design:
// generation units (turbines, inverter stations, battery containers), the
// plant substation, and the technology ratings that turn unit counts into MW.
//
// What:
//
//   - Node: id, planar position (metres), technology label, per-unit rating.
//   - Plant: one substation plus N ≥ 1 generator nodes, in input order.
//   - Filter: carve a hybrid plant into per-technology sub-networks
//     (e.g. an AC network of turbines and a DC network of solar + storage).
//   - SpacingViolations: R-tree backed proximity check between units.
//
// Why:
//
//   - Every downstream stage (distance, prim_kruskal, capacity, cable) works on
//     indices; Plant fixes the index order once: the substation is index 0 and
//     generators follow at 1..N in the order they were supplied.
//
// Errors:
//
//   - ErrInsufficientNodes (via *InsufficientNodesError): fewer than one generator.
//   - ErrNotSubstation, ErrSubstationInNodes, ErrEmptyID, ErrDuplicateID,
//     ErrBadRating, ErrBadPosition: malformed node lists.
//
// Plant values are never mutated after construction; Filter returns a new Plant.
package site
