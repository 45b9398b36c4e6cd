package neighbors

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/YuminosukeSato/knnclassify/core/model"
	"github.com/YuminosukeSato/knnclassify/core/parallel"
	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/metrics"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
	"github.com/YuminosukeSato/knnclassify/pkg/log"
)

const (
	// DefaultK is the neighbor count used when WithK is not given.
	DefaultK = 3

	// DefaultParallelThreshold is the test set size above which Predict
	// classifies records concurrently.
	DefaultParallelThreshold = 256
)

// KNeighborsClassifier predicts the label of a record from the labels of
// its k nearest training records.
//
// Fit only stores the training set. The training set is read-only
// afterwards, so Predict may classify distinct test records concurrently.
type KNeighborsClassifier struct {
	model.BaseEstimator

	k         int
	vote      VoteStrategy
	workers   int
	threshold int
	logger    log.Logger

	training  dataset.Dataset
	nFeatures int
	classes   []string
}

// Option configures a KNeighborsClassifier.
type Option func(*KNeighborsClassifier)

// WithK sets the number of neighbors consulted per prediction.
func WithK(k int) Option {
	return func(c *KNeighborsClassifier) {
		c.k = k
	}
}

// WithVote sets the vote strategy.
func WithVote(v VoteStrategy) Option {
	return func(c *KNeighborsClassifier) {
		c.vote = v
	}
}

// WithWorkers sets the number of goroutines Predict may use.
// 0 means one per CPU core, 1 disables concurrency.
func WithWorkers(n int) Option {
	return func(c *KNeighborsClassifier) {
		c.workers = n
	}
}

// WithParallelThreshold sets the test set size above which Predict fans out.
func WithParallelThreshold(n int) Option {
	return func(c *KNeighborsClassifier) {
		c.threshold = n
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *KNeighborsClassifier) {
		c.logger = l
	}
}

// NewKNeighborsClassifier creates an unfitted classifier.
func NewKNeighborsClassifier(opts ...Option) *KNeighborsClassifier {
	c := &KNeighborsClassifier{
		k:         DefaultK,
		vote:      MajorityVote,
		threshold: DefaultParallelThreshold,
		logger:    log.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(log.ModelNameKey, "KNeighborsClassifier")
	return c
}

// Fit validates and stores the training set.
func (c *KNeighborsClassifier) Fit(train dataset.Dataset) error {
	if c.k < 1 {
		return errors.NewValidationError("k", "must be at least 1", c.k)
	}
	if c.vote != MajorityVote && c.vote != LegacyVote {
		return errors.NewValidationError("vote", "unknown strategy", int(c.vote))
	}
	if len(train) == 0 {
		return errors.NewModelError("KNeighborsClassifier.Fit", "empty training set", errors.ErrEmptyData)
	}
	n, err := train.FeatureCount()
	if err != nil {
		return err
	}

	if c.k > len(train) {
		errors.Warn(errors.NewNeighborCountWarning(c.k, len(train)))
	}

	c.training = train
	c.nFeatures = n
	c.classes = uniqueSorted(train.Labels())
	c.SetFitted()

	c.logger.Info("Fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(train),
		log.FeaturesKey, n,
		log.NeighborsKey, c.k,
		log.VoteKey, c.vote.String(),
	)
	return nil
}

// PredictOne classifies a single record.
func (c *KNeighborsClassifier) PredictOne(query dataset.Record) (string, error) {
	if !c.IsFitted() {
		return "", errors.NewNotFittedError("KNeighborsClassifier", "PredictOne")
	}
	return c.predict(query)
}

func (c *KNeighborsClassifier) predict(query dataset.Record) (string, error) {
	if query.FeatureCount() != c.nFeatures {
		return "", errors.NewDimensionError("KNeighborsClassifier.Predict", c.nFeatures, query.FeatureCount(), 1)
	}
	nearest, err := Find(c.training, query, c.k)
	if err != nil {
		return "", err
	}
	return Vote(nearest, c.vote)
}

// Predict classifies every test record. Predictions are aligned with test
// by index. The first error aborts the call and no predictions are returned.
func (c *KNeighborsClassifier) Predict(test dataset.Dataset) ([]string, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError("KNeighborsClassifier", "Predict")
	}

	start := time.Now()
	predictions := make([]string, len(test))

	var (
		once     sync.Once
		firstErr error
	)
	parallel.ParallelizeWithThreshold(len(test), c.threshold, c.workers, func(s, e int) {
		err := errors.SafeExecute("KNeighborsClassifier.Predict", func() error {
			for i := s; i < e; i++ {
				label, err := c.predict(test[i])
				if err != nil {
					return errors.Wrapf(err, "test record %d", i)
				}
				predictions[i] = label
			}
			return nil
		})
		if err != nil {
			once.Do(func() { firstErr = err })
		}
	})
	if firstErr != nil {
		c.logger.Error("Prediction failed", firstErr, log.OperationKey, log.OperationPredict)
		return nil, firstErr
	}

	c.logger.Debug("Predicted",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(predictions),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return predictions, nil
}

// Score returns the percentage of test records whose label is predicted
// correctly.
func (c *KNeighborsClassifier) Score(test dataset.Dataset) (float64, error) {
	predictions, err := c.Predict(test)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(test, predictions)
}

// Classes returns the distinct training labels, sorted.
func (c *KNeighborsClassifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

// GetParams returns the hyperparameters.
func (c *KNeighborsClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_neighbors": c.k,
		"vote":        c.vote.String(),
		"n_jobs":      c.workers,
	}
}

func (c *KNeighborsClassifier) String() string {
	return fmt.Sprintf("KNeighborsClassifier(n_neighbors=%d, vote=%s)", c.k, c.vote)
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
