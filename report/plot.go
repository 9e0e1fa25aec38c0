package report

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kcz17/latbench/stats"
)

// SaveHistogramPNG renders the histogram's bucket fractions as a bar
// chart at path.
func SaveHistogramPNG(h stats.Histogram, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Latency distribution"
	p.X.Label.Text = "bucket (us)"
	p.Y.Label.Text = "fraction of samples"

	values := make(plotter.Values, stats.NumBuckets)
	for i := range values {
		values[i] = h.Fraction(i)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(stats.BucketLabels[:]...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
