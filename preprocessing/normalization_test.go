package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

func TestStandardDeviation(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"reference sequence", []float64{3, 4, 6, 7}, math.Sqrt(2.5)},
		{"single value", []float64{42}, 0},
		{"constant sequence", []float64{5, 5, 5, 5}, 0},
		{"symmetric", []float64{-1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StandardDeviation(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	_, err := StandardDeviation(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestZScores(t *testing.T) {
	x := []float64{3, 4, 6, 7}
	got, err := ZScores(x)
	require.NoError(t, err)
	require.Len(t, got, len(x))

	sd := math.Sqrt(2.5)
	want := []float64{-2 / sd, -1 / sd, 1 / sd, 2 / sd}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}

	// 標準化後は平均0、標準偏差1
	mean := 0.0
	for _, v := range got {
		mean += v
	}
	assert.InDelta(t, 0, mean/float64(len(got)), 1e-12)
	std, err := StandardDeviation(got)
	require.NoError(t, err)
	assert.InDelta(t, 1, std, 1e-12)
}

func TestZScoresErrors(t *testing.T) {
	_, err := ZScores([]float64{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = ZScores([]float64{2, 2, 2})
	assert.True(t, errors.Is(err, errors.ErrDivisionByZero))
}

func TestMinMaxScale(t *testing.T) {
	inputs := [][]float64{
		{3, 4, 6, 7},
		{-10, 0, 10},
		{0.1, 0.7, 0.3, 0.9, 0.5},
	}

	for _, x := range inputs {
		got, err := MinMaxScale(x)
		require.NoError(t, err)
		require.Len(t, got, len(x))

		minIdx, maxIdx := 0, 0
		for i, v := range x {
			if v < x[minIdx] {
				minIdx = i
			}
			if v > x[maxIdx] {
				maxIdx = i
			}
		}
		assert.Equal(t, 0.0, got[minIdx])
		assert.Equal(t, 1.0, got[maxIdx])
		for _, v := range got {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	got, err := MinMaxScale([]float64{3, 4, 6, 7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.75, 1}, got, 1e-12)
}

func TestMinMaxScaleErrors(t *testing.T) {
	_, err := MinMaxScale(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = MinMaxScale([]float64{1, 1})
	assert.True(t, errors.Is(err, errors.ErrDivisionByZero))
}
