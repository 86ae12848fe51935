package bench

import (
	"time"

	"github.com/banshee-data/isometry-bench/internal/geometry"
	"github.com/banshee-data/isometry-bench/internal/sample"
	"github.com/banshee-data/isometry-bench/internal/timeutil"
)

// Each loop runs n iterations of: draw a point, compose a and b, invert the
// composition, compose it with its inverse and transform the point. Drawing
// the point is part of the measured work for all three loops.

func timeAffine(clock timeutil.Clock, gen *sample.Generator, a, b geometry.Affine, n int) time.Duration {
	start := clock.Now()
	for i := 0; i < n; i++ {
		p := gen.Point()
		t := a.Mul(b)
		sinkAffine = t
		if inv, ok := t.TryInverse(); ok {
			sinkAffine = t.Mul(inv)
		}
		sinkPoint = t.TransformPoint(p)
	}
	return clock.Since(start)
}

func timeIsometry(clock timeutil.Clock, gen *sample.Generator, a, b geometry.Isometry, n int) time.Duration {
	start := clock.Now()
	for i := 0; i < n; i++ {
		p := gen.Point()
		iso := a.Mul(b)
		sinkIsometry = iso
		sinkIsometry = iso.Mul(iso.Inverse())
		sinkPoint = iso.TransformPoint(p)
	}
	return clock.Since(start)
}

func timeIsometryMatrix(clock timeutil.Clock, gen *sample.Generator, a, b geometry.IsometryMatrix, n int) time.Duration {
	start := clock.Now()
	for i := 0; i < n; i++ {
		p := gen.Point()
		iso := a.Mul(b)
		sinkIsometryMatrix = iso
		sinkIsometryMatrix = iso.Mul(iso.Inverse())
		sinkPoint = iso.TransformPoint(p)
	}
	return clock.Since(start)
}
