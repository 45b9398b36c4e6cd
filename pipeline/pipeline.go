// Package pipeline runs the whole classification: split the rows, scale the
// features if requested, fit the classifier, predict the test set and score
// the predictions. Printing is left to the caller.
package pipeline

import (
	"time"

	"github.com/YuminosukeSato/knnclassify/core/model"
	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/metrics"
	"github.com/YuminosukeSato/knnclassify/neighbors"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
	"github.com/YuminosukeSato/knnclassify/pkg/log"
	"github.com/YuminosukeSato/knnclassify/preprocessing"
)

// Result is the outcome of a successful run.
type Result struct {
	Config      Config
	Training    dataset.Dataset
	Test        dataset.Dataset
	Predictions []string
	Accuracy    float64
}

type runOptions struct {
	logger log.Logger
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithLogger sets the logger used by the run and its classifier.
func WithLogger(l log.Logger) RunOption {
	return func(o *runOptions) {
		o.logger = l
	}
}

// Run classifies rows according to cfg. Any error aborts the run; a
// partial Result is never returned. An empty test split is reported as
// ErrEmptyData.
func Run(cfg Config, rows [][]string, opts ...RunOption) (*Result, error) {
	o := runOptions{logger: log.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(log.ComponentKey, "pipeline")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	splitter, err := dataset.NewSplitter(cfg.TrainFraction,
		dataset.WithSeed(cfg.Seed),
		dataset.WithFeatureCount(cfg.FeatureCount),
	)
	if err != nil {
		return nil, err
	}
	training, test, err := splitter.Split(rows)
	if err != nil {
		return nil, errors.Wrap(err, "split")
	}
	logger.Info("Split dataset",
		log.OperationKey, log.OperationSplit,
		log.TrainingKey, len(training),
		log.TestKey, len(test),
		log.TrainFractionKey, cfg.TrainFraction,
		log.RandomSeedKey, cfg.Seed,
	)
	if len(test) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "test split is empty")
	}

	// 距離計算用の特徴量。表示用の Result には元の値を残す
	fitSet, evalSet, err := scale(cfg.Scaling, training, test)
	if err != nil {
		return nil, errors.Wrap(err, "scale")
	}

	clf := neighbors.NewKNeighborsClassifier(
		neighbors.WithK(cfg.K),
		neighbors.WithVote(cfg.Vote),
		neighbors.WithWorkers(cfg.Workers),
		neighbors.WithLogger(logger),
	)
	if err := clf.Fit(fitSet); err != nil {
		return nil, errors.Wrap(err, "fit")
	}
	predictions, err := clf.Predict(evalSet)
	if err != nil {
		return nil, errors.Wrap(err, "predict")
	}
	accuracy, err := metrics.Accuracy(test, predictions)
	if err != nil {
		return nil, errors.Wrap(err, "score")
	}

	logger.Info("Run finished",
		log.OperationKey, log.OperationScore,
		log.AccuracyKey, accuracy,
		log.ScalingKey, cfg.Scaling,
		log.VoteKey, cfg.Vote.String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &Result{
		Config:      cfg,
		Training:    training,
		Test:        test,
		Predictions: predictions,
		Accuracy:    accuracy,
	}, nil
}

// scale fits the chosen scaler on the training features and applies it to
// both splits. With ScalingNone the inputs are returned unchanged.
func scale(kind string, training, test dataset.Dataset) (dataset.Dataset, dataset.Dataset, error) {
	var scaler model.Transformer
	switch kind {
	case ScalingStandard:
		scaler = preprocessing.NewStandardScaler()
	case ScalingMinMax:
		scaler = preprocessing.NewMinMaxScaler()
	default:
		return training, test, nil
	}

	if len(training) == 0 {
		return nil, nil, errors.NewModelError("scale", "empty training set", errors.ErrEmptyData)
	}
	trainX, err := training.Matrix()
	if err != nil {
		return nil, nil, err
	}
	testX, err := test.Matrix()
	if err != nil {
		return nil, nil, err
	}

	scaledTrain, err := scaler.FitTransform(trainX)
	if err != nil {
		return nil, nil, err
	}
	scaledTest, err := scaler.Transform(testX)
	if err != nil {
		return nil, nil, err
	}

	fitSet, err := training.WithFeatures(scaledTrain)
	if err != nil {
		return nil, nil, err
	}
	evalSet, err := test.WithFeatures(scaledTest)
	if err != nil {
		return nil, nil, err
	}
	return fitSet, evalSet, nil
}
