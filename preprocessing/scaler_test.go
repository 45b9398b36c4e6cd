package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/knnclassify/core/model"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

var (
	_ model.Transformer = (*StandardScaler)(nil)
	_ model.Transformer = (*MinMaxScaler)(nil)
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		3, 1,
		4, 1,
		6, 1,
		7, 1,
	})

	scaler := NewStandardScaler()
	assert.Equal(t, "StandardScaler()", scaler.String())

	Xt, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{5, 1}, scaler.Mean, 1e-12)
	// 定数列のスケールは1
	assert.Equal(t, 1.0, scaler.Scale[1])

	col := mat.Col(nil, 0, Xt)
	want, err := ZScores([]float64{3, 4, 6, 7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, col, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, mat.Col(nil, 1, Xt), 1e-12)
	assert.Equal(t, "StandardScaler(n_features=2)", scaler.String())
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScaler()

	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))

	require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = scaler.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestMinMaxScaler(t *testing.T) {
	train := mat.NewDense(3, 2, []float64{
		0, 10,
		5, 10,
		10, 10,
	})

	scaler := NewMinMaxScaler()
	Xt, err := scaler.FitTransform(train)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, mat.Col(nil, 0, Xt), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, mat.Col(nil, 1, Xt), 1e-12)

	// 訓練範囲外の値は [0,1] をはみ出す
	test := mat.NewDense(1, 2, []float64{20, 10})
	out, err := scaler.Transform(test)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out.At(0, 0), 1e-12)
	assert.Equal(t, "MinMaxScaler(n_features=2)", scaler.String())
}

func TestMinMaxScalerErrors(t *testing.T) {
	scaler := NewMinMaxScaler()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))

	err = scaler.Fit(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}
