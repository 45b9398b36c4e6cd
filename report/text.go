// Package report renders classification results for people: plain text
// lines, a table and a scatter plot. Nothing in here computes predictions.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/knnclassify/pipeline"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
	"github.com/YuminosukeSato/knnclassify/preprocessing"
)

// WriteText writes the split sizes, one line per prediction and the
// overall accuracy.
func WriteText(w io.Writer, res *pipeline.Result) error {
	if res == nil {
		return errors.New("report: nil result")
	}
	if len(res.Predictions) != len(res.Test) {
		return errors.NewDimensionError("WriteText", len(res.Test), len(res.Predictions), 0)
	}

	tw := &errWriter{w: w}
	tw.printf("No. training sets: %d\n", len(res.Training))
	tw.printf("No. test sets: %d\n", len(res.Test))
	for i, rec := range res.Test {
		tw.printf("Predicted: %s, actual: %s\n", res.Predictions[i], rec.Label)
	}
	tw.printf("Accuracy of test data: %s%%\n", FormatFloat(res.Accuracy))
	return tw.err
}

// WriteNormalization writes the standard deviation, z-scores and min-max
// scaling of values.
func WriteNormalization(w io.Writer, values []float64) error {
	std, err := preprocessing.StandardDeviation(values)
	if err != nil {
		return err
	}
	z, err := preprocessing.ZScores(values)
	if err != nil {
		return err
	}
	scaled, err := preprocessing.MinMaxScale(values)
	if err != nil {
		return err
	}

	seq := FormatFloats(values)
	tw := &errWriter{w: w}
	tw.printf("Stddev for: %s -> %s\n", seq, FormatFloat(std))
	tw.printf("Z-scores for: %s -> %s\n", seq, FormatFloats(z))
	tw.printf("Min-max scaling for: %s -> %s\n", seq, FormatFloats(scaled))
	return tw.err
}

// FormatFloat formats v with the shortest exact representation, always
// keeping a fractional part ("100.0", "96.07843137254902").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// FormatFloats formats a slice as "[1.0, 2.5]".
func FormatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// errWriter は最初の書き込みエラーを保持し、以降の書き込みを捨てる
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	if _, err := fmt.Fprintf(ew.w, format, args...); err != nil {
		ew.err = errors.WithStack(err)
	}
}
