package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/isometry-bench/internal/bench"
)

// WriteHTML renders an interactive bar chart page of the totals.
func WriteHTML(w io.Writer, res *bench.Result) error {
	x := make([]string, 0, len(res.Timings))
	y := make([]opts.BarData, 0, len(res.Timings))
	for _, t := range res.Timings {
		x = append(x, string(t.Representation))
		y = append(y, opts.BarData{Value: t.Seconds()})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Rigid transform benchmark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Rigid transform benchmark",
			Subtitle: fmt.Sprintf("run=%s samples=%d iterations=%d started=%s", res.RunID, res.TotalSamples, res.SubSamples, res.StartedAt.Format(time.RFC3339)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)
	bar.SetXAxis(x).
		AddSeries("total", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}

// WriteHTMLFile renders WriteHTML into path.
func WriteHTMLFile(res *bench.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteHTML(f, res); err != nil {
		f.Close()
		return fmt.Errorf("failed to render html: %w", err)
	}
	return f.Close()
}
