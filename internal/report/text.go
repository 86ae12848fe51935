// Package report renders benchmark results: the plain-text totals on
// stdout plus optional JSON, chart and log output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/isometry-bench/internal/bench"
	"github.com/banshee-data/isometry-bench/internal/monitoring"
)

// WriteTotals writes one "<Representation> took <seconds> seconds" line per
// representation, in run order.
func WriteTotals(w io.Writer, res *bench.Result) error {
	for _, rep := range bench.Representations {
		t, _ := res.Timing(rep)
		if _, err := fmt.Fprintf(w, "%s took %s seconds\n", rep, formatSeconds(t.Seconds())); err != nil {
			return err
		}
	}
	return nil
}

// formatSeconds renders the shortest decimal that round-trips, never in
// exponent form.
func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// LogStats logs per-representation statistics at info level.
func LogStats(res *bench.Result) {
	monitoring.Infof("run %s: %d samples x %d iterations, seed %d", res.RunID, res.TotalSamples, res.SubSamples, res.Seed)
	for _, t := range res.Timings {
		s := t.Stats(res.SubSamples)
		monitoring.Infof("%-15s total=%.6fs mean/sample=%.6fs sd=%.6fs ns/iter=%.1f",
			t.Representation, t.Seconds(), s.MeanSampleSeconds, s.StdDevSampleSeconds, s.NanosPerIteration)
	}
	if res.Verified > 0 {
		monitoring.Infof("verification: %d/%d samples failed", res.VerifyFailures, res.Verified)
	}
}
