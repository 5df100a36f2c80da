package prim_kruskal

import (
	"fmt"
	"math"
)

// readSquare validates dist and copies it into a [][]float64.
//
// Contract:
//   - dist is non-nil, square and has at least one vertex.
//   - off-diagonal entries are ≥ 0 or +Inf (missing edge); NaN is rejected.
//   - the diagonal is ignored.
//
// Complexity: O(V²) time and memory.
func readSquare(dist Matrix) ([][]float64, error) {
	if dist == nil || dist.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}
	n := dist.Rows()
	if dist.Cols() != n {
		return nil, ErrNonSquare
	}

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(d) || d < 0 {
				return nil, fmt.Errorf("d(%d,%d)=%g: %w", i, j, d, ErrInvalidDistance)
			}
			out[i][j] = d
		}
	}

	return out, nil
}

// validatePenalty rejects w < 0, NaN and ±Inf.
func validatePenalty(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNegativePenalty
	}

	return nil
}
