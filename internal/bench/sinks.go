package bench

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/isometry-bench/internal/geometry"
)

// Package-level sinks keep the compiler from discarding results computed in
// the timed loops.
var (
	sinkAffine         geometry.Affine
	sinkIsometry       geometry.Isometry
	sinkIsometryMatrix geometry.IsometryMatrix
	sinkPoint          r3.Vec
)
