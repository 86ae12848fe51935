package geometry

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRigidParams_RepresentationsAgree(t *testing.T) {
	rng := newTestRand(40)
	points := []r3.Vec{{}, {X: 0.25, Y: -1.5, Z: 3}}

	for i := 0; i < 100; i++ {
		p := randParams(rng)
		iso, isoMat, aff := p.Isometry(), p.IsometryMatrix(), p.Affine()

		for _, pt := range points {
			want := iso.TransformPoint(pt)
			assertVecNear(t, isoMat.TransformPoint(pt), want, 1e-9)
			assertVecNear(t, aff.TransformPoint(pt), want, 1e-9)
		}
	}
}

func TestRigidParams_ZeroRotation(t *testing.T) {
	p := RigidParams{Translation: r3.Vec{X: 1, Y: 2, Z: 3}}
	pt := r3.Vec{X: 4, Y: 5, Z: 6}
	want := r3.Vec{X: 5, Y: 7, Z: 9}

	assertVecNear(t, p.Isometry().TransformPoint(pt), want, testTol)
	assertVecNear(t, p.IsometryMatrix().TransformPoint(pt), want, testTol)
	assertVecNear(t, p.Affine().TransformPoint(pt), want, testTol)
}
