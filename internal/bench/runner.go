// Package bench times composition, inversion and point transformation for
// the three rigid-transform representations in package geometry.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/isometry-bench/internal/geometry"
	"github.com/banshee-data/isometry-bench/internal/monitoring"
	"github.com/banshee-data/isometry-bench/internal/sample"
	"github.com/banshee-data/isometry-bench/internal/timeutil"
)

// Config controls the size of a run.
type Config struct {
	// TotalSamples is the number of outer samples; each draws a fresh pair
	// of transforms.
	TotalSamples int
	// SubSamples is the number of timed iterations per representation per
	// outer sample.
	SubSamples int
	// Verify checks the geometric identities once per outer sample, outside
	// the timed loops.
	Verify          bool
	VerifyTolerance float64
}

// DefaultConfig returns the standard run size.
func DefaultConfig() Config {
	return Config{
		TotalSamples:    1000,
		SubSamples:      100000,
		VerifyTolerance: 1e-9,
	}
}

// Validate checks that the run size is usable.
func (c Config) Validate() error {
	if c.TotalSamples < 0 {
		return fmt.Errorf("total samples must be non-negative, got %d", c.TotalSamples)
	}
	if c.SubSamples < 0 {
		return fmt.Errorf("sub samples must be non-negative, got %d", c.SubSamples)
	}
	if c.Verify && c.VerifyTolerance <= 0 {
		return fmt.Errorf("verify tolerance must be positive, got %g", c.VerifyTolerance)
	}
	return nil
}

// Runner executes the benchmark. It is single-threaded; all loops run
// sequentially on the calling goroutine.
type Runner struct {
	cfg   Config
	gen   *sample.Generator
	clock timeutil.Clock
}

// NewRunner creates a runner. A nil clock uses the real clock.
func NewRunner(cfg Config, gen *sample.Generator, clock timeutil.Clock) *Runner {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Runner{cfg: cfg, gen: gen, clock: clock}
}

// Run executes every outer sample and returns the accumulated timings.
// ctx is checked between outer samples; on cancellation the partial result
// is returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bench config: %w", err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		StartedAt:  r.clock.Now(),
		Seed:       r.gen.Seed(),
		SubSamples: r.cfg.SubSamples,
	}
	for _, rep := range Representations {
		res.Timings = append(res.Timings, Timing{
			Representation: rep,
			PerSample:      make([]time.Duration, 0, r.cfg.TotalSamples),
		})
	}

	monitoring.Debugf("bench: run %s starting: %d samples x %d iterations, seed %d",
		res.RunID, r.cfg.TotalSamples, r.cfg.SubSamples, res.Seed)

	progressEvery := r.cfg.TotalSamples / 10
	for i := 0; i < r.cfg.TotalSamples; i++ {
		if err := ctx.Err(); err != nil {
			monitoring.Infof("bench: run %s cancelled after %d samples", res.RunID, res.TotalSamples)
			return res, err
		}
		r.runSample(res)
		res.TotalSamples++

		if progressEvery > 0 && res.TotalSamples%progressEvery == 0 {
			monitoring.Debugf("bench: %d/%d samples", res.TotalSamples, r.cfg.TotalSamples)
		}
	}

	return res, nil
}

func (r *Runner) runSample(res *Result) {
	pair := r.gen.Pair()

	iso1, iso2 := pair.First.Isometry(), pair.Second.Isometry()
	isom1, isom2 := pair.First.IsometryMatrix(), pair.Second.IsometryMatrix()
	trans1 := geometry.AffineFromMatrixUnchecked(iso1.ToHomogeneous())
	trans2 := geometry.AffineFromMatrixUnchecked(iso2.ToHomogeneous())

	p := r.gen.Point()
	if r.cfg.Verify {
		res.Verified++
		if issues := verify(iso1, isom1, trans1, p, r.cfg.VerifyTolerance); len(issues) > 0 {
			res.VerifyFailures++
			monitoring.Warnf("bench: sample %d failed verification: %v", res.TotalSamples, issues)
		}
	}

	res.add(RepresentationTransform, timeAffine(r.clock, r.gen, trans1, trans2, r.cfg.SubSamples))
	res.add(RepresentationIsometry, timeIsometry(r.clock, r.gen, iso1, iso2, r.cfg.SubSamples))
	res.add(RepresentationIsometryMatrix, timeIsometryMatrix(r.clock, r.gen, isom1, isom2, r.cfg.SubSamples))
}
