// Package preprocessing は特徴量のスケーリングを提供する
//
// StandardDeviation / ZScores / MinMaxScale は1次元の数値列に対する純粋関数、
// StandardScaler / MinMaxScaler は行列の各列に同じ変換を学習・適用する変換器。
package preprocessing

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// StandardDeviation は母標準偏差 sqrt(mean((x_i - mean)^2)) を返す
// 空の入力は ErrEmptyData
func StandardDeviation(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "StandardDeviation")
	}
	_, std := stat.PopMeanStdDev(x, nil)
	return std, nil
}

// ZScores は各要素を (x_i - mean) / StandardDeviation(x) に標準化する
// 空の入力は ErrEmptyData、定数列 (標準偏差0) は ErrDivisionByZero
func ZScores(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ZScores")
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	if std == 0 {
		return nil, errors.Wrap(errors.ErrDivisionByZero, "ZScores: standard deviation is zero")
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - mean) / std
	}
	return out, nil
}

// MinMaxScale は各要素を (x_i - min) / (max - min) で [0,1] に写す
// 空の入力は ErrEmptyData、max == min は ErrDivisionByZero
func MinMaxScale(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "MinMaxScale")
	}
	lo, hi := floats.Min(x), floats.Max(x)
	if hi == lo {
		return nil, errors.Wrap(errors.ErrDivisionByZero, "MinMaxScale: max equals min")
	}

	out := make([]float64, len(x))
	span := hi - lo
	for i, v := range x {
		out[i] = (v - lo) / span
	}
	return out, nil
}
