// Package sample draws the random rotation/translation parameters and test
// points that feed the benchmark.
package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/isometry-bench/internal/geometry"
)

// Generator draws uniform values on [0, 1). It is not safe for concurrent
// use.
type Generator struct {
	rng  *rand.Rand
	seed uint64
}

// NewGenerator returns a deterministic generator for seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// NewRandomGenerator returns a generator seeded from the runtime source.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.Uint64())
}

// Seed returns the seed the generator was created with, so a run can be
// replayed.
func (g *Generator) Seed() uint64 { return g.seed }

// Float64 returns a uniform value on [0, 1).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Point returns a point with each coordinate uniform on [0, 1).
func (g *Generator) Point() r3.Vec {
	x := g.rng.Float64()
	y := g.rng.Float64()
	z := g.rng.Float64()
	return r3.Vec{X: x, Y: y, Z: z}
}

// Translation returns a translation with each component uniform on [0, 1).
func (g *Generator) Translation() r3.Vec {
	return g.Point()
}

// AxisAngle returns three uniform components scaled by a fourth uniform
// scalar. The components are drawn before the scale.
func (g *Generator) AxisAngle() r3.Vec {
	v := g.Point()
	return r3.Scale(g.rng.Float64(), v)
}

// Params draws one rigid transform: axis-angle first, then translation.
func (g *Generator) Params() geometry.RigidParams {
	axisAngle := g.AxisAngle()
	translation := g.Translation()
	return geometry.RigidParams{AxisAngle: axisAngle, Translation: translation}
}

// Pair holds the two independent transforms composed in each benchmark
// iteration.
type Pair struct {
	First  geometry.RigidParams
	Second geometry.RigidParams
}

// Pair draws two independent transforms, first then second.
func (g *Generator) Pair() Pair {
	first := g.Params()
	second := g.Params()
	return Pair{First: first, Second: second}
}
