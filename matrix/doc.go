// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used for distance and cost tables.
//
// Dense is row-major over a flat []float64. Collection networks are small (tens
// to hundreds of nodes) and complete, so a V×V table is the natural layout:
// O(1) lookups, O(V²) memory.
//
// Element rules:
//
//   - NaN is rejected by Set (ErrNaNInf); ±Inf is accepted and reads as "no edge".
//   - At and Set bound-check and wrap ErrOutOfRange with the call site.
//   - FromRows rejects ragged input (ErrNonRectangular).
//
// Complexity: NewDense/FromRows/Clone/ToRows O(r·c); At/Set O(1); IsSymmetric O(n²).
package matrix
