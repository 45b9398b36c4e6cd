package dataset

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		v := strconv.Itoa(i)
		rows[i] = []string{v, v, v, v, "label" + strconv.Itoa(i%3)}
	}
	return rows
}

func TestNewSplitterValidation(t *testing.T) {
	for _, fraction := range []float64{-0.1, 1.1} {
		_, err := NewSplitter(fraction)
		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr), "fraction %v", fraction)
	}

	_, err := NewSplitter(0.5, WithFeatureCount(0))
	assert.Error(t, err)
}

func TestSplitPartitionsEveryRow(t *testing.T) {
	s, err := NewSplitter(0.66, WithSeed(42))
	require.NoError(t, err)

	train, test, err := s.Split(makeRows(150))
	require.NoError(t, err)
	assert.Equal(t, 150, len(train)+len(test))

	seen := make(map[float64]int)
	for _, r := range append(append(Dataset{}, train...), test...) {
		seen[r.Features[0]]++
	}
	assert.Len(t, seen, 150, "each row must land in exactly one set")
}

func TestSplitIsReproducibleWithSeed(t *testing.T) {
	rows := makeRows(100)

	s1, err := NewSplitter(0.66, WithSeed(7))
	require.NoError(t, err)
	s2, err := NewSplitter(0.66, WithSeed(7))
	require.NoError(t, err)

	train1, _, err := s1.Split(rows)
	require.NoError(t, err)
	train2, _, err := s2.Split(rows)
	require.NoError(t, err)
	assert.Equal(t, train1, train2)
}

func TestSplitExtremeFractions(t *testing.T) {
	rows := makeRows(50)

	all, err := NewSplitter(1, WithSeed(1))
	require.NoError(t, err)
	train, test, err := all.Split(rows)
	require.NoError(t, err)
	assert.Len(t, train, 50)
	assert.Empty(t, test)

	none, err := NewSplitter(0, WithSeed(1))
	require.NoError(t, err)
	train, test, err = none.Split(rows)
	require.NoError(t, err)
	assert.Empty(t, train)
	assert.Len(t, test, 50)
}

func TestSplitMalformedRowAborts(t *testing.T) {
	rows := makeRows(3)
	rows[1][2] = "n/a"

	s, err := NewSplitter(0.5, WithSeed(1))
	require.NoError(t, err)
	train, test, err := s.Split(rows)

	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Row)
	assert.Equal(t, 2, malformed.Column)
	assert.Nil(t, train)
	assert.Nil(t, test)
}

// 各行は独立なベルヌーイ試行なので、訓練データ数の平均は n*trainFraction に収束する
func TestSplitExpectedRatio(t *testing.T) {
	rows := makeRows(1000)
	src := rand.NewPCG(2024, 10)

	const trials = 200
	total := 0
	for i := 0; i < trials; i++ {
		s, err := NewSplitter(0.66, WithSource(src))
		require.NoError(t, err)
		train, _, err := s.Split(rows)
		require.NoError(t, err)
		total += len(train)
	}

	mean := float64(total) / trials
	assert.InDelta(t, 660, mean, 6)
}

func TestSplitRecords(t *testing.T) {
	records, err := ParseRows(makeRows(20), DefaultFeatureCount)
	require.NoError(t, err)

	s, err := NewSplitter(0.5, WithSeed(3))
	require.NoError(t, err)
	train, test := s.SplitRecords(records)
	assert.Equal(t, 20, len(train)+len(test))
	assert.Equal(t, 0.5, s.TrainFraction())
}
