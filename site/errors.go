// SPDX-License-Identifier: MIT

package site

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientNodes indicates that a plant has no generator node to connect.
	ErrInsufficientNodes = errors.New("site: at least one generator node is required")

	// ErrNotSubstation indicates that the designated substation node carries a generator technology.
	ErrNotSubstation = errors.New("site: substation node must use the substation technology")

	// ErrSubstationInNodes indicates that the generator list contains a second substation.
	ErrSubstationInNodes = errors.New("site: generator list contains a substation node")

	// ErrEmptyID indicates a node without an identifier.
	ErrEmptyID = errors.New("site: node id is empty")

	// ErrDuplicateID indicates two nodes sharing one identifier.
	ErrDuplicateID = errors.New("site: duplicate node id")

	// ErrBadRating indicates a generator whose per-unit rating is not a positive finite number.
	ErrBadRating = errors.New("site: generator rating must be positive and finite")

	// ErrBadPosition indicates NaN or ±Inf coordinates.
	ErrBadPosition = errors.New("site: node position must be finite")
)

// InsufficientNodesError reports how many generator nodes were actually supplied.
// It matches ErrInsufficientNodes under errors.Is.
type InsufficientNodesError struct {
	Got int
}

// Error implements error.
func (e *InsufficientNodesError) Error() string {
	return fmt.Sprintf("site: need at least 1 generator node, got %d", e.Got)
}

// Unwrap exposes the sentinel.
func (e *InsufficientNodesError) Unwrap() error { return ErrInsufficientNodes }

// nodeErrorf attaches the offending node id to a sentinel.
func nodeErrorf(id string, err error) error {
	return fmt.Errorf("node %q: %w", id, err)
}
