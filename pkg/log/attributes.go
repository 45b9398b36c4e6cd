// Standard attribute keys, so that the classifier, the pipeline and the
// command line tool log the same field names.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "KNeighborsClassifier".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: fit, predict, score, split, scale.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package doing the work.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the run.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	TrainingKey = "data.training"
	TestKey     = "data.test"
)

// Hyperparameters and configuration.
const (
	NeighborsKey     = "hyperparams.k"
	VoteKey          = "hyperparams.vote"
	TrainFractionKey = "config.train_fraction"
	ScalingKey       = "config.scaling"
	RandomSeedKey    = "config.random_seed"
	WorkersKey       = "config.workers"
)

// Results.
const (
	AccuracyKey   = "metrics.accuracy"
	PredsKey      = "preds.count"
	DurationMsKey = "perf.duration_ms"
)

// Errors.
const (
	ErrorCodeKey = "error.code"
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationSplit   = "split"
	OperationScale   = "scale"

	PhaseTraining      = "training"
	PhaseTesting       = "testing"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorNoNeighbors       = "NO_NEIGHBORS"
	ErrorMalformedInput    = "MALFORMED_INPUT"
)
