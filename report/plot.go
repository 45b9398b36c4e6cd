package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/knnclassify/pipeline"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Plot size of SavePlot.
const (
	PlotWidth  = 16 * vg.Centimeter
	PlotHeight = 12 * vg.Centimeter
)

// ScatterPlot builds a scatter plot of the test records over two feature
// columns, one series per predicted label. Misclassified records are drawn
// with a cross.
func ScatterPlot(res *pipeline.Result, xFeature, yFeature int) (*plot.Plot, error) {
	if res == nil {
		return nil, errors.New("report: nil result")
	}
	if len(res.Test) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ScatterPlot")
	}
	if len(res.Predictions) != len(res.Test) {
		return nil, errors.NewDimensionError("ScatterPlot", len(res.Test), len(res.Predictions), 0)
	}
	nFeatures := res.Test[0].FeatureCount()
	for _, f := range []int{xFeature, yFeature} {
		if f < 0 || f >= nFeatures {
			return nil, errors.NewValidationError("feature", fmt.Sprintf("must be within [0, %d)", nFeatures), f)
		}
	}

	// 予測ラベルごとの系列。出現順を保つ
	var order []string
	hits := make(map[string]plotter.XYs)
	var misses plotter.XYs
	for i, rec := range res.Test {
		pt := plotter.XY{X: rec.Features[xFeature], Y: rec.Features[yFeature]}
		label := res.Predictions[i]
		if _, ok := hits[label]; !ok {
			order = append(order, label)
			hits[label] = nil
		}
		hits[label] = append(hits[label], pt)
		if label != rec.Label {
			misses = append(misses, pt)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Predictions (accuracy %s%%)", FormatFloat(res.Accuracy))
	p.X.Label.Text = fmt.Sprintf("feature %d", xFeature)
	p.Y.Label.Text = fmt.Sprintf("feature %d", yFeature)
	p.Add(plotter.NewGrid())

	for i, label := range order {
		s, err := plotter.NewScatter(hits[label])
		if err != nil {
			return nil, errors.Wrapf(err, "scatter for %q", label)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(s)
		p.Legend.Add(label, s)
	}
	if len(misses) > 0 {
		s, err := plotter.NewScatter(misses)
		if err != nil {
			return nil, errors.Wrap(err, "scatter for misclassified records")
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("misclassified", s)
	}
	return p, nil
}

// SavePlot writes ScatterPlot to path. The image format follows the file
// extension (png, svg, pdf, ...).
func SavePlot(res *pipeline.Result, path string, xFeature, yFeature int) error {
	p, err := ScatterPlot(res, xFeature, yFeature)
	if err != nil {
		return err
	}
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return errors.Wrapf(err, "save plot to %s", path)
	}
	return nil
}
