package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/banshee-data/isometry-bench/internal/bench"
)

// Summary is the exported form of a result.
type Summary struct {
	RunID           string                  `json:"run_id"`
	StartedAt       time.Time               `json:"started_at"`
	Seed            uint64                  `json:"seed"`
	TotalSamples    int                     `json:"total_samples"`
	SubSamples      int                     `json:"sub_samples"`
	Verified        int                     `json:"verified,omitempty"`
	VerifyFailures  int                     `json:"verify_failures,omitempty"`
	Representations []RepresentationSummary `json:"representations"`
}

// RepresentationSummary holds per-representation totals and statistics.
type RepresentationSummary struct {
	Name              string        `json:"name"`
	Duration          time.Duration `json:"duration_ns"`
	DurationSecs      float64       `json:"duration_secs"`
	MeanSampleSecs    float64       `json:"mean_sample_secs"`
	StdDevSampleSecs  float64       `json:"stddev_sample_secs"`
	NanosPerIteration float64       `json:"ns_per_iteration"`
}

// Summarize flattens a result into its exported form.
func Summarize(res *bench.Result) Summary {
	s := Summary{
		RunID:          res.RunID,
		StartedAt:      res.StartedAt,
		Seed:           res.Seed,
		TotalSamples:   res.TotalSamples,
		SubSamples:     res.SubSamples,
		Verified:       res.Verified,
		VerifyFailures: res.VerifyFailures,
	}
	for _, t := range res.Timings {
		st := t.Stats(res.SubSamples)
		s.Representations = append(s.Representations, RepresentationSummary{
			Name:              string(t.Representation),
			Duration:          t.Total,
			DurationSecs:      t.Seconds(),
			MeanSampleSecs:    st.MeanSampleSeconds,
			StdDevSampleSecs:  st.StdDevSampleSeconds,
			NanosPerIteration: st.NanosPerIteration,
		})
	}
	return s
}

// ExportJSON writes the result summary to path.
func ExportJSON(res *bench.Result, path string) error {
	data, err := json.MarshalIndent(Summarize(res), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
