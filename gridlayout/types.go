// SPDX-License-Identifier: MIT

package gridlayout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for layout evaluation.
var (
	// ErrNoUnits indicates a linear or aspect layout with no units.
	ErrNoUnits = errors.New("gridlayout: number of units must be > 0")
	// ErrInvalidDimensions indicates a non-positive unit size, negative buffer or road, or a non-finite value.
	ErrInvalidDimensions = errors.New("gridlayout: invalid unit, buffer or road dimensions")
	// ErrUnknownMode indicates a mode other than linear, aspect or custom.
	ErrUnknownMode = errors.New("gridlayout: unknown layout mode")
	// ErrInvalidCustom indicates inconsistent custom row counts.
	ErrInvalidCustom = errors.New("gridlayout: invalid custom grid")
)

// Mode selects how pads are arranged.
type Mode string

const (
	// ModeLinear places every pad in one row.
	ModeLinear Mode = "linear"
	// ModeAspect searches for the most square grid.
	ModeAspect Mode = "aspect"
	// ModeCustom uses caller-supplied row counts.
	ModeCustom Mode = "custom"
)

// ParseMode accepts a mode name, case-insensitively. "aspect ratio optimized"
// is an alias for ModeAspect.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return ModeLinear, nil
	case "aspect", "aspect ratio optimized", "aspect_ratio_optimized":
		return ModeAspect, nil
	case "custom":
		return ModeCustom, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Options describes the units and the grid to place them in. Lengths are metres.
type Options struct {
	Mode       Mode    `json:"mode" yaml:"mode"`
	Units      int     `json:"units" yaml:"units"`
	UnitLength float64 `json:"unit_length_m" yaml:"unit_length_m"`
	UnitWidth  float64 `json:"unit_width_m" yaml:"unit_width_m"`
	PadBuffer  float64 `json:"pad_buffer_m" yaml:"pad_buffer_m"`
	RoadWidth  float64 `json:"road_width_m" yaml:"road_width_m"`

	// Rows, PerRow and Leftover are read only in ModeCustom.
	Rows     int `json:"rows,omitempty" yaml:"rows,omitempty"`
	PerRow   int `json:"per_row,omitempty" yaml:"per_row,omitempty"`
	Leftover int `json:"leftover,omitempty" yaml:"leftover,omitempty"`
}

// DefaultOptions returns an aspect-optimized layout of 40-ft-class containers:
// 8 m × 3 m units, 1 m pad buffer, 5 m road. Units is left at 0.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeAspect,
		UnitLength: 8,
		UnitWidth:  3,
		PadBuffer:  1,
		RoadWidth:  5,
	}
}

// Candidate is one evaluated grid shape.
type Candidate struct {
	FullRows    int     `json:"full_rows"`
	PerRow      int     `json:"per_row"`
	Leftover    int     `json:"leftover"`
	TotalRows   int     `json:"total_rows"`
	RowLengthM  float64 `json:"row_length_m"`
	AspectRatio float64 `json:"aspect_ratio"`
	// Score is max(AspectRatio, 1/AspectRatio).
	Score float64 `json:"score"`
}

// Layout is the chosen grid with its cable and road lengths.
type Layout struct {
	Candidate
	Mode         Mode    `json:"mode"`
	Units        int     `json:"units"`
	PadLengthM   float64 `json:"pad_length_m"`
	PadWidthM    float64 `json:"pad_width_m"`
	CableLengthM float64 `json:"cable_length_m"`
	RoadLengthM  float64 `json:"road_length_m"`
	// Candidates holds every shape considered in ModeAspect, in evaluation order.
	Candidates []Candidate `json:"candidates,omitempty"`
}
