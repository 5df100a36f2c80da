package gridlayout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosnet/gridlayout"
)

const eps = 1e-9

func containers(mode gridlayout.Mode, n int) gridlayout.Options {
	o := gridlayout.DefaultOptions()
	o.Mode = mode
	o.Units = n
	return o
}

func TestOptimize_AspectTen(t *testing.T) {
	l, err := gridlayout.Optimize(containers(gridlayout.ModeAspect, 10))
	require.NoError(t, err)

	assert.Equal(t, gridlayout.ModeAspect, l.Mode)
	assert.InDelta(t, 10, l.PadLengthM, eps)
	assert.InDelta(t, 5, l.PadWidthM, eps)

	require.Len(t, l.Candidates, 4)
	wantScores := []float64{55.0 / 15, 1, 55.0 / 20, 65.0 / 15}
	for i, w := range wantScores {
		assert.InDelta(t, w, l.Candidates[i].Score, 1e-12, "candidate %d", i)
	}

	assert.Equal(t, 2, l.FullRows)
	assert.Equal(t, 5, l.PerRow)
	assert.Equal(t, 0, l.Leftover)
	assert.Equal(t, 2, l.TotalRows)
	assert.InDelta(t, 25, l.RowLengthM, eps)
	assert.InDelta(t, 1, l.AspectRatio, eps)
	assert.InDelta(t, 80, l.RoadLengthM, eps)
	assert.InDelta(t, 60, l.CableLengthM, eps)
}

func TestOptimize_AspectOddPartialRow(t *testing.T) {
	l, err := gridlayout.Optimize(containers(gridlayout.ModeAspect, 7))
	require.NoError(t, err)

	require.Len(t, l.Candidates, 3)
	assert.Equal(t, 1, l.FullRows)
	assert.Equal(t, 4, l.PerRow)
	assert.Equal(t, 3, l.Leftover)
	assert.Equal(t, 2, l.TotalRows)
	assert.InDelta(t, 65, l.RoadLengthM, eps, "even row count with partial row trims the road")
	assert.InDelta(t, 45, l.CableLengthM, eps)
}

func TestOptimize_WinnerHasLowestScore(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 9, 16, 17, 50, 99, 240} {
		l, err := gridlayout.Optimize(containers(gridlayout.ModeAspect, n))
		require.NoError(t, err, "n=%d", n)

		assert.Len(t, l.Candidates, int(math.Ceil(math.Sqrt(float64(n)))), "n=%d", n)
		for _, c := range l.Candidates {
			assert.LessOrEqual(t, l.Score, c.Score, "n=%d", n)
			assert.Equal(t, n, c.FullRows*c.PerRow+c.Leftover, "n=%d", n)
		}
		assert.Equal(t, n, l.Units)
		assert.Greater(t, l.CableLengthM, 0.0)
		assert.Greater(t, l.RoadLengthM, 0.0)
	}
}

func TestOptimize_Linear(t *testing.T) {
	l, err := gridlayout.Optimize(containers(gridlayout.ModeLinear, 10))
	require.NoError(t, err)

	assert.Equal(t, gridlayout.ModeLinear, l.Mode)
	assert.Equal(t, 1, l.TotalRows)
	assert.Equal(t, 10, l.PerRow)
	assert.InDelta(t, 50, l.CableLengthM, eps)
	assert.InDelta(t, 50, l.RoadLengthM, eps)
	assert.Empty(t, l.Candidates)
}

func TestOptimize_SingleUnitIsLinear(t *testing.T) {
	aspect, err := gridlayout.Optimize(containers(gridlayout.ModeAspect, 1))
	require.NoError(t, err)
	linear, err := gridlayout.Optimize(containers(gridlayout.ModeLinear, 1))
	require.NoError(t, err)

	assert.Equal(t, gridlayout.ModeLinear, aspect.Mode)
	assert.Equal(t, linear, aspect)
	assert.InDelta(t, 5, aspect.CableLengthM, eps)
}

func TestOptimize_Custom(t *testing.T) {
	o := containers(gridlayout.ModeCustom, 0)
	o.Rows, o.PerRow, o.Leftover = 3, 4, 2

	l, err := gridlayout.Optimize(o)
	require.NoError(t, err)

	assert.Equal(t, 14, l.Units)
	assert.Equal(t, 4, l.TotalRows)
	assert.InDelta(t, 20, l.RowLengthM, eps)
	assert.InDelta(t, 105, l.RoadLengthM, eps)
	assert.InDelta(t, 95, l.CableLengthM, eps)

	o.Leftover = 0
	l, err = gridlayout.Optimize(o)
	require.NoError(t, err)
	assert.Equal(t, 3, l.TotalRows)
	assert.Equal(t, 12, l.Units)
}

func TestOptimize_Errors(t *testing.T) {
	_, err := gridlayout.Optimize(containers(gridlayout.ModeAspect, 0))
	assert.ErrorIs(t, err, gridlayout.ErrNoUnits)

	_, err = gridlayout.Optimize(containers(gridlayout.ModeLinear, -3))
	assert.ErrorIs(t, err, gridlayout.ErrNoUnits)

	_, err = gridlayout.Optimize(containers("spiral", 4))
	assert.ErrorIs(t, err, gridlayout.ErrUnknownMode)

	bad := containers(gridlayout.ModeAspect, 4)
	bad.UnitWidth = 0
	_, err = gridlayout.Optimize(bad)
	assert.ErrorIs(t, err, gridlayout.ErrInvalidDimensions)

	bad = containers(gridlayout.ModeAspect, 4)
	bad.RoadWidth = math.NaN()
	_, err = gridlayout.Optimize(bad)
	assert.ErrorIs(t, err, gridlayout.ErrInvalidDimensions)

	custom := containers(gridlayout.ModeCustom, 0)
	custom.Rows, custom.PerRow = 2, 0
	_, err = gridlayout.Optimize(custom)
	assert.ErrorIs(t, err, gridlayout.ErrInvalidCustom)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]gridlayout.Mode{
		"linear":                 gridlayout.ModeLinear,
		"Aspect":                 gridlayout.ModeAspect,
		"aspect ratio optimized": gridlayout.ModeAspect,
		" custom ":               gridlayout.ModeCustom,
	} {
		got, err := gridlayout.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := gridlayout.ParseMode("hex")
	assert.ErrorIs(t, err, gridlayout.ErrUnknownMode)
}
