package neighbors

import (
	"sort"

	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Neighbor is a training record together with its distance to a query.
type Neighbor struct {
	Record   dataset.Record
	Distance float64
}

// Rank orders every training record by ascending distance to query, using
// all of the query's features. The sort is stable: records at equal
// distance keep their training-set order.
func Rank(training dataset.Dataset, query dataset.Record) ([]Neighbor, error) {
	featureCount := query.FeatureCount()

	ranked := make([]Neighbor, len(training))
	for i, rec := range training {
		d, err := Euclidean(query.Features, rec.Features, featureCount)
		if err != nil {
			return nil, errors.Wrapf(err, "training record %d", i)
		}
		ranked[i] = Neighbor{Record: rec, Distance: d}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, nil
}

// Nearest returns the k closest neighbors of query, closest first. When k
// exceeds the training set size the whole ranking is returned; an empty
// training set yields an empty result.
func Nearest(training dataset.Dataset, query dataset.Record, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, errors.NewValidationError("k", "must be at least 1", k)
	}
	ranked, err := Rank(training, query)
	if err != nil {
		return nil, err
	}
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked, nil
}

// Find is Nearest without the distances.
func Find(training dataset.Dataset, query dataset.Record, k int) ([]dataset.Record, error) {
	nearest, err := Nearest(training, query, k)
	if err != nil {
		return nil, err
	}
	return Records(nearest), nil
}

// Records strips the distances from neighbors, keeping their order.
func Records(neighbors []Neighbor) []dataset.Record {
	out := make([]dataset.Record, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Record
	}
	return out
}
