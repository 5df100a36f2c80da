// SPDX-License-Identifier: MIT

package cable

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog indicates a catalog with no cable type.
	ErrEmptyCatalog = errors.New("cable: catalog is empty")

	// ErrInvalidCable indicates a catalog row with unusable electrical data or a duplicate name.
	ErrInvalidCable = errors.New("cable: invalid cable specification")

	// ErrInvalidFrequency indicates a non-positive line frequency.
	ErrInvalidFrequency = errors.New("cable: line frequency must be > 0")

	// ErrInvalidDemand indicates a segment with a negative or non-finite length or power.
	ErrInvalidDemand = errors.New("cable: invalid segment demand")

	// ErrCapacityExceeded indicates that no catalog type can carry a segment.
	ErrCapacityExceeded = errors.New("cable: no cable type has sufficient capacity")

	// ErrUnknownFormat indicates a catalog file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("cable: unknown catalog file format")
)

// CapacityExceededError describes the segment that could not be served.
type CapacityExceededError struct {
	// Segment is the position of the segment in the demand list (the terminal
	// segment comes last).
	Segment    int
	From, To   string
	RequiredMW float64
	// LargestMW is the highest transfer capacity found in the catalog.
	LargestMW float64
}

// Error implements error.
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cable: segment %d (%s→%s) needs %.3f MW, largest cable carries %.3f MW",
		e.Segment, e.From, e.To, e.RequiredMW, e.LargestMW)
}

// Unwrap exposes ErrCapacityExceeded.
func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

func invalidCable(name, format string, args ...any) error {
	return fmt.Errorf("%q: %s: %w", name, fmt.Sprintf(format, args...), ErrInvalidCable)
}
