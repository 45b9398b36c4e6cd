package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Splitter assigns each record to the training or test set by an
// independent uniform draw: u < trainFraction goes to training. The split
// ratio is only expected, never exact.
type Splitter struct {
	trainFraction float64
	featureCount  int
	uniform       distuv.Uniform
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithSeed makes the split reproducible.
func WithSeed(seed uint64) SplitterOption {
	return func(s *Splitter) {
		s.uniform.Src = rand.NewPCG(seed, seed)
	}
}

// WithSource draws from src.
func WithSource(src rand.Source) SplitterOption {
	return func(s *Splitter) {
		s.uniform.Src = src
	}
}

// WithFeatureCount sets how many leading columns Split parses as features.
func WithFeatureCount(n int) SplitterOption {
	return func(s *Splitter) {
		s.featureCount = n
	}
}

// NewSplitter creates a Splitter. trainFraction must lie in [0, 1].
func NewSplitter(trainFraction float64, opts ...SplitterOption) (*Splitter, error) {
	if !(trainFraction >= 0 && trainFraction <= 1) {
		return nil, errors.NewValidationError("trainFraction", "must be within [0, 1]", trainFraction)
	}
	s := &Splitter{
		trainFraction: trainFraction,
		featureCount:  DefaultFeatureCount,
		uniform: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(rand.Uint64(), rand.Uint64()),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.featureCount < 1 {
		return nil, errors.NewValidationError("featureCount", "must be at least 1", s.featureCount)
	}
	return s, nil
}

// TrainFraction returns the configured probability of a record going to
// the training set.
func (s *Splitter) TrainFraction() float64 {
	return s.trainFraction
}

// Split parses every raw row and assigns it to training or test. A row that
// fails to parse aborts the split.
func (s *Splitter) Split(rows [][]string) (train, test Dataset, err error) {
	for i, row := range rows {
		rec, err := ParseRecord(row, s.featureCount, i)
		if err != nil {
			return nil, nil, err
		}
		if s.draw() {
			train = append(train, rec)
		} else {
			test = append(test, rec)
		}
	}
	return train, test, nil
}

// SplitRecords assigns already parsed records.
func (s *Splitter) SplitRecords(records Dataset) (train, test Dataset) {
	for _, rec := range records {
		if s.draw() {
			train = append(train, rec)
		} else {
			test = append(test, rec)
		}
	}
	return train, test
}

func (s *Splitter) draw() bool {
	return s.uniform.Rand() < s.trainFraction
}
