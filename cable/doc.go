// SPDX-License-Identifier: MIT

// Package cable derives the electrical limits of collection cables and assigns
// a cable type to every segment of a collection tree.
//
// What:
//
//   - Spec: one catalog row as supplied by the surrounding cost tool (ampacity,
//     rated voltage, R/L/C per km, cost per metre).
//   - Type: a Spec plus derived characteristic impedance, power factor and the
//     maximum 3-phase real power the cable can transfer.
//   - Catalog: Types sorted ascending by (ampacity, rated voltage).
//   - Select: greedy "smallest sufficient" assignment per segment, with totals
//     per type, total material cost, dissipated power and trench length.
//
// Electrical model (per cable type, line frequency f):
//
//	G  = 1 / R                                  (S, from the Ω/km resistance)
//	Z  = sqrt((R + j·2πf·L) / (G + j·2πf·C))    (L in H/km, C in F/km)
//	pf = cos(atan(Im Z / Re Z))
//	P  = √3 · V · I_max · pf / 1e6              (MW)
//
// Per segment carrying P MW over ℓ metres, V being the collection voltage (the
// highest rated voltage in the catalog):
//
//	I    = P·1e6 / V
//	loss = 3 · I² · R · ℓ / 1000                (W)
//
// Errors:
//
//   - ErrEmptyCatalog, ErrInvalidCable: unusable catalog input.
//   - *CapacityExceededError (matches ErrCapacityExceeded): no type can carry a
//     segment. Select never returns a partial assignment.
//   - ErrInvalidDemand: negative or non-finite segment length or power.
package cable
