package pipeline

import (
	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/neighbors"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Feature scaling applied before classification.
const (
	ScalingNone     = "none"
	ScalingStandard = "standard"
	ScalingMinMax   = "minmax"
)

// Config holds the parameters of one classification run.
type Config struct {
	// TrainFraction is the probability of a row landing in the training set.
	TrainFraction float64
	// K is the number of neighbors consulted per prediction.
	K int
	// FeatureCount is the number of leading numeric columns per row.
	FeatureCount int
	// Seed drives the train/test split.
	Seed uint64
	// Vote selects majority voting or the legacy tally.
	Vote neighbors.VoteStrategy
	// Scaling is one of ScalingNone, ScalingStandard, ScalingMinMax.
	Scaling string
	// Workers bounds prediction concurrency; 0 means one per CPU core.
	Workers int
}

// DefaultConfig returns the parameters of the reference flower classifier.
func DefaultConfig() Config {
	return Config{
		TrainFraction: 0.66,
		K:             neighbors.DefaultK,
		FeatureCount:  dataset.DefaultFeatureCount,
		Seed:          42,
		Vote:          neighbors.MajorityVote,
		Scaling:       ScalingNone,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if !(c.TrainFraction >= 0 && c.TrainFraction <= 1) {
		return errors.NewValidationError("TrainFraction", "must be within [0, 1]", c.TrainFraction)
	}
	if c.K < 1 {
		return errors.NewValidationError("K", "must be at least 1", c.K)
	}
	if c.FeatureCount < 1 {
		return errors.NewValidationError("FeatureCount", "must be at least 1", c.FeatureCount)
	}
	if c.Vote != neighbors.MajorityVote && c.Vote != neighbors.LegacyVote {
		return errors.NewValidationError("Vote", "unknown strategy", int(c.Vote))
	}
	switch c.Scaling {
	case ScalingNone, ScalingStandard, ScalingMinMax:
	default:
		return errors.NewValidationError("Scaling", "must be none, standard or minmax", c.Scaling)
	}
	if c.Workers < 0 {
		return errors.NewValidationError("Workers", "must not be negative", c.Workers)
	}
	return nil
}
