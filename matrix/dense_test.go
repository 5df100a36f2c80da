package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bosnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Errors(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.NoError(t, m.Set(0, 0, math.Inf(1)), "+Inf marks a missing edge")
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.True(t, m.IsSymmetric(0))
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, m.ToRows())

	_, err = matrix.FromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrNonRectangular)
	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDense_SetSymAndSymmetry(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 2, 7))
	assert.True(t, m.IsSymmetric(0))

	require.NoError(t, m.Set(1, 0, 1e-3))
	assert.False(t, m.IsSymmetric(1e-6))
	assert.True(t, m.IsSymmetric(1e-2))

	rect, _ := matrix.NewDense(2, 3)
	assert.False(t, rect.IsSymmetric(1))
}
