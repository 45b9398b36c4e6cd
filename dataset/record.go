// Package dataset holds labeled records, the CSV loader and the random
// train/test splitter.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Record is one labeled instance: numeric features followed by a
// categorical label. Records are not modified after loading.
type Record struct {
	Features []float64
	Label    string
}

// FeatureCount returns the number of numeric attributes.
func (r Record) FeatureCount() int {
	return len(r.Features)
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d)
}

// Labels returns the label of every record, in order.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d))
	for i, r := range d {
		labels[i] = r.Label
	}
	return labels
}

// FeatureCount returns the feature count shared by all records. An empty
// dataset has 0 features; records disagreeing on the count yield a
// DimensionError.
func (d Dataset) FeatureCount() (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	n := d[0].FeatureCount()
	for _, r := range d[1:] {
		if r.FeatureCount() != n {
			return 0, errors.NewDimensionError("Dataset.FeatureCount", n, r.FeatureCount(), 1)
		}
	}
	return n, nil
}

// Matrix copies the features into an n_samples × n_features matrix.
func (d Dataset) Matrix() (*mat.Dense, error) {
	n, err := d.FeatureCount()
	if err != nil {
		return nil, err
	}
	if len(d) == 0 || n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Dataset.Matrix")
	}
	m := mat.NewDense(len(d), n, nil)
	for i, r := range d {
		m.SetRow(i, r.Features)
	}
	return m, nil
}

// WithFeatures returns a new dataset whose i-th record keeps the i-th label
// and takes row i of features. The receiver is not modified.
func (d Dataset) WithFeatures(features mat.Matrix) (Dataset, error) {
	r, c := features.Dims()
	if r != len(d) {
		return nil, errors.NewDimensionError("Dataset.WithFeatures", len(d), r, 0)
	}
	out := make(Dataset, len(d))
	for i, rec := range d {
		row := make([]float64, c)
		mat.Row(row, i, features)
		out[i] = Record{Features: row, Label: rec.Label}
	}
	return out, nil
}
