package geometry

import (
	"testing"
)

func TestIsRigidMatrix(t *testing.T) {
	// Valid identity
	identity := [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if !IsRigidMatrix(identity) {
		t.Error("identity should be rigid")
	}

	// Valid rotation (90° around Z) with translation
	rotZ90 := [16]float64{0, -1, 0, 5, 1, 0, 0, -2, 0, 0, 1, 0, 0, 0, 0, 1}
	if !IsRigidMatrix(rotZ90) {
		t.Error("90° Z rotation should be rigid")
	}

	// Invalid: bad last row
	badLastRow := [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1}
	if IsRigidMatrix(badLastRow) {
		t.Error("bad last row should not be rigid")
	}

	// Invalid: reflection (det = -1)
	reflection := [16]float64{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if IsRigidMatrix(reflection) {
		t.Error("reflection should not be rigid")
	}

	// Invalid: shear keeps det = 1 but is not orthonormal
	shear := [16]float64{1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if IsRigidMatrix(shear) {
		t.Error("shear should not be rigid")
	}
}

func TestValidateRigid_Scaled(t *testing.T) {
	// Scale factor 2 makes det = 8
	scaled := [16]float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}

	check := ValidateRigid(scaled, RigidTolerance)

	if check.Rigid {
		t.Error("expected non-rigid for scaled transform")
	}
	if len(check.Issues) != 2 {
		t.Errorf("expected determinant and orthonormality issues, got %v", check.Issues)
	}
	if check.Determinant < 7.999 || check.Determinant > 8.001 {
		t.Errorf("determinant = %g, want 8", check.Determinant)
	}
}

func TestValidateRigid_ComposedDriftWithinTolerance(t *testing.T) {
	rng := newTestRand(30)
	acc := IdentityIsometry()
	for i := 0; i < 1000; i++ {
		acc = acc.Mul(randParams(rng).Isometry())
	}

	check := ValidateRigid(acc.ToHomogeneous(), 1e-6)
	if !check.Rigid {
		t.Errorf("1000 composed isometries should stay rigid, issues: %v", check.Issues)
	}
}
