package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/YuminosukeSato/knnclassify/metrics"
	"github.com/YuminosukeSato/knnclassify/pipeline"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// WriteTable renders every prediction as a table row, followed by a
// per-label summary of support, recall and precision and the accuracy line.
func WriteTable(w io.Writer, res *pipeline.Result) error {
	if res == nil {
		return errors.New("report: nil result")
	}
	cm, err := metrics.NewConfusionMatrix(res.Test.Labels(), res.Predictions)
	if err != nil {
		return err
	}

	tw := &errWriter{w: w}
	tw.printf("No. training sets: %d\n", len(res.Training))
	tw.printf("No. test sets: %d\n", len(res.Test))
	if tw.err != nil {
		return tw.err
	}

	predictions := tablewriter.NewWriter(w)
	predictions.SetHeader([]string{"#", "Predicted", "Actual", "Correct"})
	for i, rec := range res.Test {
		correct := "no"
		if res.Predictions[i] == rec.Label {
			correct = "yes"
		}
		predictions.Append([]string{strconv.Itoa(i), res.Predictions[i], rec.Label, correct})
	}
	predictions.Render()

	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Label", "Support", "Recall", "Precision"})
	for _, label := range cm.Labels {
		summary.Append([]string{
			label,
			strconv.Itoa(cm.Support(label)),
			strconv.FormatFloat(cm.Recall(label), 'f', 3, 64),
			strconv.FormatFloat(cm.Precision(label), 'f', 3, 64),
		})
	}
	summary.Render()

	tw.printf("Accuracy of test data: %s%%\n", FormatFloat(res.Accuracy))
	return tw.err
}
