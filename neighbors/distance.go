// Package neighbors implements the k-nearest-neighbors classifier: the
// Euclidean distance, the stable neighbor ranking, label voting and the
// KNeighborsClassifier estimator that ties them together.
package neighbors

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Euclidean returns the Euclidean distance between a and b over their first
// featureCount positions. Positions past featureCount are ignored.
func Euclidean(a, b []float64, featureCount int) (float64, error) {
	if featureCount < 0 {
		return 0, errors.NewValidationError("featureCount", "must not be negative", featureCount)
	}
	if featureCount > len(a) {
		return 0, errors.NewDimensionError("Euclidean", featureCount, len(a), 1)
	}
	if featureCount > len(b) {
		return 0, errors.NewDimensionError("Euclidean", featureCount, len(b), 1)
	}
	return floats.Distance(a[:featureCount], b[:featureCount], 2), nil
}
