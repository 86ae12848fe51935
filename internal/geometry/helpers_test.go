package geometry

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const testTol = 1e-12

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randVec(rng *rand.Rand) r3.Vec {
	return r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
}

func randParams(rng *rand.Rand) RigidParams {
	axis := randVec(rng)
	return RigidParams{
		AxisAngle:   r3.Scale(rng.Float64(), axis),
		Translation: randVec(rng),
	}
}

func assertVecNear(t *testing.T, got, want r3.Vec, tol float64) {
	t.Helper()
	if !VecApproxEqual(got, want, tol) {
		t.Errorf("vector = %+v, want %+v (tol %g)", got, want, tol)
	}
}
