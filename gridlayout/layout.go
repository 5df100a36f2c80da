// SPDX-License-Identifier: MIT

package gridlayout

import (
	"fmt"
	"math"
)

// Optimize evaluates opts and returns the resulting layout.
//
// Steps:
//  1. Validate dimensions; derive pad length and width.
//  2. N = 1 falls back to ModeLinear regardless of opts.Mode.
//  3. Build the grid for the mode (for ModeAspect, keep the lowest score).
//  4. Apply the road and cable closed forms.
//
// Complexity: O(√N).
func Optimize(opts Options) (*Layout, error) {
	if err := validateDimensions(opts); err != nil {
		return nil, err
	}
	padLen := opts.UnitLength + 2*opts.PadBuffer
	padWid := opts.UnitWidth + 2*opts.PadBuffer

	mode := opts.Mode
	if mode != ModeCustom && opts.Units == 1 {
		mode = ModeLinear
	}

	out := &Layout{Mode: mode, PadLengthM: padLen, PadWidthM: padWid}
	switch mode {
	case ModeLinear:
		if opts.Units <= 0 {
			return nil, ErrNoUnits
		}
		out.Units = opts.Units
		out.Candidate = newCandidate(1, opts.Units, 0, padLen, padWid, opts.RoadWidth)
		out.CableLengthM = float64(opts.Units) * padWid
		out.RoadLengthM = out.CableLengthM

		return out, nil

	case ModeAspect:
		if opts.Units <= 0 {
			return nil, ErrNoUnits
		}
		out.Units = opts.Units
		out.Candidates = candidates(opts.Units, padLen, padWid, opts.RoadWidth)
		best := 0
		for i := 1; i < len(out.Candidates); i++ {
			if out.Candidates[i].Score < out.Candidates[best].Score {
				best = i
			}
		}
		out.Candidate = out.Candidates[best]

	case ModeCustom:
		if opts.Rows < 0 || opts.PerRow <= 0 || opts.Leftover < 0 || opts.Rows+opts.Leftover == 0 {
			return nil, fmt.Errorf("rows=%d per_row=%d leftover=%d: %w",
				opts.Rows, opts.PerRow, opts.Leftover, ErrInvalidCustom)
		}
		out.Units = opts.Rows*opts.PerRow + opts.Leftover
		out.Candidate = newCandidate(opts.Rows, opts.PerRow, opts.Leftover, padLen, padWid, opts.RoadWidth)

	default:
		return nil, fmt.Errorf("%q: %w", opts.Mode, ErrUnknownMode)
	}

	out.RoadLengthM = roadLength(out.Candidate, padLen, padWid, opts.RoadWidth)
	out.CableLengthM = cableLength(out.Candidate, padLen, padWid, opts.RoadWidth)

	return out, nil
}

// candidates enumerates r = 1..⌈√n⌉ grid shapes.
func candidates(n int, padLen, padWid, road float64) []Candidate {
	count := int(math.Ceil(math.Sqrt(float64(n))))
	out := make([]Candidate, 0, count)
	for r := 1; r <= count; r++ {
		var full, per int
		switch {
		case r == 1:
			full, per = 1, n
		case r == 2 && n%2 == 0:
			full, per = 2, n/2
		case r == 2:
			full, per = 1, (n+1)/2
		default:
			full, per = r, n/r
		}
		out = append(out, newCandidate(full, per, n-full*per, padLen, padWid, road))
	}

	return out
}

func newCandidate(full, per, left int, padLen, padWid, road float64) Candidate {
	c := Candidate{FullRows: full, PerRow: per, Leftover: left, TotalRows: full}
	if left > 0 {
		c.TotalRows++
	}
	c.RowLengthM = float64(per) * padWid
	c.AspectRatio = (c.RowLengthM + road) /
		(float64(c.TotalRows)*padLen + float64(c.TotalRows/2+1)*road)
	c.Score = math.Max(c.AspectRatio, 1/c.AspectRatio)

	return c
}

func roadLength(c Candidate, padLen, padWid, road float64) float64 {
	l := (c.RowLengthM+road+2*padLen)*float64(c.TotalRows/2) + c.RowLengthM + road
	if c.TotalRows%2 == 0 && c.Leftover > 0 {
		l -= padWid * float64(c.PerRow-c.Leftover)
	}

	return l
}

func cableLength(c Candidate, padLen, padWid, road float64) float64 {
	halfUp := (c.TotalRows + 1) / 2

	return padLen*float64(c.TotalRows) +
		float64(c.FullRows)*(c.RowLengthM-padWid) +
		road*float64(halfUp-1) +
		math.Max(float64(c.Leftover-1)*padWid, 0)
}

func validateDimensions(o Options) error {
	for _, v := range []float64{o.UnitLength, o.UnitWidth, o.PadBuffer, o.RoadWidth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidDimensions
		}
	}
	if o.UnitLength <= 0 || o.UnitWidth <= 0 || o.PadBuffer < 0 || o.RoadWidth < 0 {
		return ErrInvalidDimensions
	}

	return nil
}
