package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAffine_TryInverseSingular(t *testing.T) {
	// Zero-scaled rotation block: every point collapses onto the translation.
	singular := AffineFromMatrixUnchecked([16]float64{
		0, 0, 0, 1,
		0, 0, 0, 2,
		0, 0, 0, 3,
		0, 0, 0, 1,
	})

	inv, ok := singular.TryInverse()
	assert.False(t, ok)
	assert.Equal(t, Affine{}, inv)
}

func TestAffine_TryInverseRankDeficient(t *testing.T) {
	// Rotation block with a zero row.
	a := AffineFromMatrixUnchecked([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
	})
	_, ok := a.TryInverse()
	assert.False(t, ok)
}

func TestAffine_ComposeWithInverseIsIdentity(t *testing.T) {
	rng := newTestRand(20)
	for i := 0; i < 200; i++ {
		a := randParams(rng).Affine()
		inv, ok := a.TryInverse()
		require.True(t, ok, "sample %d", i)
		if got := a.Mul(inv).Matrix(); !IsApproxIdentity(got, testTol) {
			t.Fatalf("sample %d: T*T^-1 = %v, want identity", i, got)
		}
	}
}

func TestAffine_InverseOfScaling(t *testing.T) {
	a, err := AffineFromMatrix([16]float64{
		2, 0, 0, 4,
		0, 4, 0, 0,
		0, 0, 8, 0,
		0, 0, 0, 1,
	})
	require.NoError(t, err)

	inv, ok := a.TryInverse()
	require.True(t, ok)
	assertVecNear(t, inv.TransformPoint(r3.Vec{X: 6, Y: 4, Z: 8}), r3.Vec{X: 1, Y: 1, Z: 1}, testTol)
	assert.False(t, a.IsRigid())
}

func TestAffine_ComposedActionMatchesSequentialAction(t *testing.T) {
	rng := newTestRand(21)
	for i := 0; i < 200; i++ {
		a := randParams(rng).Affine()
		b := randParams(rng).Affine()
		p := randVec(rng)

		assertVecNear(t, a.Mul(b).TransformPoint(p), a.TransformPoint(b.TransformPoint(p)), testTol)
	}
}

func TestAffine_UncheckedRoundTripPreservesAction(t *testing.T) {
	rng := newTestRand(22)
	for i := 0; i < 50; i++ {
		iso := randParams(rng).Isometry()
		aff := AffineFromMatrixUnchecked(iso.ToHomogeneous())
		p := randVec(rng)

		assertVecNear(t, aff.TransformPoint(p), iso.TransformPoint(p), testTol)
		assert.True(t, aff.IsRigid())
	}
}

func TestAffineFromMatrix(t *testing.T) {
	tests := []struct {
		name    string
		m       [16]float64
		wantErr bool
	}{
		{"identity", IdentityAffine().Matrix(), false},
		{"translation", [16]float64{1, 0, 0, 5, 0, 1, 0, 6, 0, 0, 1, 7, 0, 0, 0, 1}, false},
		{"projective bottom row", [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0.5, 0, 0, 1}, true},
		{"scaled w", [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 2}, true},
		{"nan element", [16]float64{math.NaN(), 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, true},
		{"inf element", [16]float64{1, 0, 0, math.Inf(1), 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AffineFromMatrix(tt.m)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNotAffine))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.m, a.Matrix())
		})
	}
}

func TestAffine_TransformPointIgnoresBottomRow(t *testing.T) {
	a := AffineFromMatrixUnchecked([16]float64{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		9, 9, 9, 9,
	})
	assert.Equal(t, r3.Vec{X: 2, Y: 3, Z: 4}, a.TransformPoint(r3.Vec{X: 1, Y: 1, Z: 1}))
}

func TestAffine_MatrixReturnsCopy(t *testing.T) {
	a := IdentityAffine()
	m := a.Matrix()
	m[0] = 42
	assert.Equal(t, 1.0, a.Matrix()[0])
}
