package bench

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Timing accumulates the measured time of one representation.
type Timing struct {
	Representation Representation
	Total          time.Duration
	// PerSample holds the inner-loop duration of each outer sample.
	PerSample []time.Duration
}

// Seconds returns the total as floating-point seconds.
func (t Timing) Seconds() float64 {
	return t.Total.Seconds()
}

// Cumulative returns the running total after each outer sample.
func (t Timing) Cumulative() []time.Duration {
	out := make([]time.Duration, len(t.PerSample))
	var sum time.Duration
	for i, d := range t.PerSample {
		sum += d
		out[i] = sum
	}
	return out
}

// Stats summarises the per-sample distribution of a Timing.
type Stats struct {
	MeanSampleSeconds   float64
	StdDevSampleSeconds float64
	NanosPerIteration   float64
}

// Stats computes per-sample mean and standard deviation and the average
// cost of one inner iteration. subSamples is the inner iteration count.
func (t Timing) Stats(subSamples int) Stats {
	if len(t.PerSample) == 0 {
		return Stats{}
	}
	secs := make([]float64, len(t.PerSample))
	for i, d := range t.PerSample {
		secs[i] = d.Seconds()
	}

	var s Stats
	if len(secs) == 1 {
		s.MeanSampleSeconds = secs[0]
	} else {
		s.MeanSampleSeconds, s.StdDevSampleSeconds = stat.MeanStdDev(secs, nil)
	}
	if iters := len(t.PerSample) * subSamples; iters > 0 {
		s.NanosPerIteration = float64(t.Total.Nanoseconds()) / float64(iters)
	}
	return s
}

// Result is the outcome of one benchmark run.
type Result struct {
	RunID     string
	StartedAt time.Time
	Seed      uint64
	// TotalSamples counts completed outer samples; it is lower than the
	// configured count when the run was cancelled.
	TotalSamples int
	SubSamples   int
	Timings      []Timing

	Verified       int
	VerifyFailures int
}

// Timing returns the timing for rep.
func (r *Result) Timing(rep Representation) (Timing, bool) {
	for _, t := range r.Timings {
		if t.Representation == rep {
			return t, true
		}
	}
	return Timing{}, false
}

func (r *Result) add(rep Representation, d time.Duration) {
	for i := range r.Timings {
		if r.Timings[i].Representation == rep {
			r.Timings[i].Total += d
			r.Timings[i].PerSample = append(r.Timings[i].PerSample, d)
			return
		}
	}
}
