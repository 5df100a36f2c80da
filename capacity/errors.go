// SPDX-License-Identifier: MIT

package capacity

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural indicates an adjacency that is not a spanning tree.
	ErrStructural = errors.New("capacity: adjacency is not a spanning tree")

	// ErrNodeMismatch indicates that len(nodes) != len(adjacency) or both are empty.
	ErrNodeMismatch = errors.New("capacity: node list does not match adjacency")

	// ErrRootOutOfRange indicates a root index outside [0, V).
	ErrRootOutOfRange = errors.New("capacity: root out of range")
)

// StructuralError pinpoints the vertex where the tree check failed.
type StructuralError struct {
	Vertex int
	Reason string
}

// Error implements error.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("capacity: vertex %d: %s", e.Vertex, e.Reason)
}

// Unwrap exposes ErrStructural.
func (e *StructuralError) Unwrap() error { return ErrStructural }

func structural(v int, format string, args ...any) error {
	return &StructuralError{Vertex: v, Reason: fmt.Sprintf(format, args...)}
}
