package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/isometry-bench/internal/bench"
)

// WritePlot renders a bar chart of the per-representation totals. The
// image format follows the file extension (png, svg, pdf, ...).
func WritePlot(res *bench.Result, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rigid transform benchmark (%d x %d)", res.TotalSamples, res.SubSamples)
	p.Y.Label.Text = "Total time (s)"

	values := make(plotter.Values, 0, len(res.Timings))
	names := make([]string, 0, len(res.Timings))
	for _, t := range res.Timings {
		values = append(values, t.Seconds())
		names = append(names, string(t.Representation))
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
