package survey

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/chubrik/rotation3d/spatialmath"
)

// Histogram buckets the errors of a result.
func Histogram(r Result, bins int) histogram.Histogram {
	if bins < 1 {
		bins = 1
	}
	return histogram.Hist(bins, r.Errors)
}

// WriteHistogram prints the error histogram of a result with bars at most width wide.
func WriteHistogram(w io.Writer, r Result, bins, width int) error {
	return histogram.Fprint(w, Histogram(r, bins), histogram.Linear(width))
}

// ByConversion returns the results of one conversion in the order they appear.
func ByConversion(results []Result, c spatialmath.Conversion) []Result {
	return lo.Filter(results, func(r Result, _ int) bool {
		return r.Case.Conversion == c
	})
}

var fileNameReplacer = strings.NewReplacer("->", "-to-", "/", "_")

// PlotFileName is the file SavePlots writes the plot of a case to, e.g.
// "matrix-to-euler_polar.png".
func PlotFileName(c Case) string {
	return fileNameReplacer.Replace(c.Name()) + ".png"
}

// SavePlot draws the error distribution of a result as a PNG histogram. The budget is marked
// with a vertical line. bins <= 0 picks the square root of the sample count.
func SavePlot(r Result, bins int, path string) error {
	hist, err := plotter.NewHist(plotter.Values(r.Errors), bins)
	if err != nil {
		return errors.Wrapf(err, "cannot plot %s", r.Case.Name())
	}

	p := plot.New()
	p.Title.Text = r.Case.Name()
	p.X.Label.Text = "error"
	p.Y.Label.Text = "samples"
	p.Add(hist)

	var top float64
	for _, b := range hist.Bins {
		if b.Weight > top {
			top = b.Weight
		}
	}
	budget, err := plotter.NewLine(plotter.XYs{{X: r.Case.Budget, Y: 0}, {X: r.Case.Budget, Y: top}})
	if err != nil {
		return errors.Wrapf(err, "cannot plot %s", r.Case.Name())
	}
	budget.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(budget)
	p.Legend.Add("budget", budget)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "cannot save plot %s", path)
	}
	return nil
}

// SavePlots writes one plot per result into dir, which must exist.
func SavePlots(results []Result, bins int, dir string) error {
	for _, r := range results {
		if err := SavePlot(r, bins, filepath.Join(dir, PlotFileName(r.Case))); err != nil {
			return err
		}
	}
	return nil
}
