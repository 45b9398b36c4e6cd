// Package model は分類器と変換器が共有するインターフェースと学習状態を定義する
package model

import "github.com/YuminosukeSato/knnclassify/dataset"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(train dataset.Dataset) error
}

// Predictor はラベルを予測するモデルのインターフェース
type Predictor interface {
	// Predict はテストデータの各レコードに対するラベルを、入力と同じ順序で返す
	Predict(test dataset.Dataset) ([]string, error)
}

// Scorer は正解率を計算できるモデルのインターフェース
type Scorer interface {
	// Score は正解率をパーセント (0〜100) で返す
	Score(test dataset.Dataset) (float64, error)
}

// Classifier は分類器の基本インターフェース
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes は学習時に見たラベルをソート済みで返す
	Classes() []string
}

// ParameterGetter はハイパーパラメータを公開するモデルのインターフェース
type ParameterGetter interface {
	GetParams() map[string]interface{}
}
