// SPDX-License-Identifier: MIT

// Package gridlayout arranges identical rectangular units (storage containers,
// inverter skids) on pads in a row grid and estimates the cable and road
// lengths needed to serve them.
//
// Every unit sits on a pad:
//
//	padLen = unitLength + 2·buffer
//	padWid = unitWidth  + 2·buffer
//
// Rows run width-wise; a road separates every pair of rows. Three modes:
//
//   - ModeLinear: one row of N pads. cable = road = N·padWid. Forced when N = 1.
//   - ModeAspect: evaluates r = 1..⌈√N⌉ candidate grids and keeps the one whose
//     footprint is closest to square.
//   - ModeCustom: the caller fixes full rows, pads per row and leftover pads.
//
// Candidate grid for r:
//
//	r = 1       one row of N
//	r = 2       two rows of N/2 (N even) or one full row of ⌈N/2⌉ plus a partial row (N odd)
//	r ≥ 3       r rows of ⌊N/r⌋
//
// With leftover = N − full·perRow, totRows = full + (leftover > 0) and
// rowLen = perRow·padWid:
//
//	aspect = (rowLen + road) / (totRows·padLen + (⌊totRows/2⌋ + 1)·road)
//	score  = max(aspect, 1/aspect)                     (lowest wins, first on ties)
//	road   = (rowLen + road + 2·padLen)·⌊totRows/2⌋ + rowLen + road
//	         − padWid·(perRow − leftover)               (only if totRows even and leftover > 0)
//	cable  = padLen·totRows + full·(rowLen − padWid)
//	         + road·(⌈totRows/2⌉ − 1) + max((leftover − 1)·padWid, 0)
//
// Complexity: O(√N) time and memory.
package gridlayout
