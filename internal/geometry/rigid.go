package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RigidTolerance is the default tolerance for checking rotation block validity.
const RigidTolerance = 1e-9

// RigidCheck contains the result of inspecting a homogeneous matrix.
type RigidCheck struct {
	Rigid       bool
	Determinant float64
	// OrthoError is max |(R Rᵀ - I)ij| over the rotation block.
	OrthoError float64
	Issues     []string
}

// ValidateRigid checks whether m is a proper rigid transform:
// 1. Rotation block is orthonormal (R Rᵀ ≈ I)
// 2. Determinant ≈ 1 (no reflection)
// 3. Bottom row is [0 0 0 1]
func ValidateRigid(m [16]float64, tol float64) RigidCheck {
	result := RigidCheck{Issues: make([]string, 0)}

	r := mat.NewDense(3, 3, []float64{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	})

	result.Determinant = mat.Det(r)
	if math.Abs(result.Determinant-1) > tol {
		result.Issues = append(result.Issues, fmt.Sprintf("determinant %g is not 1", result.Determinant))
	}

	var rrt mat.Dense
	rrt.Mul(r, r.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if e := math.Abs(rrt.At(i, j) - want); e > result.OrthoError {
				result.OrthoError = e
			}
		}
	}
	if result.OrthoError > tol {
		result.Issues = append(result.Issues, fmt.Sprintf("rotation block not orthonormal (error %g)", result.OrthoError))
	}

	if m[12] != 0 || m[13] != 0 || m[14] != 0 || math.Abs(m[15]-1) > tol {
		result.Issues = append(result.Issues, "bottom row is not [0 0 0 1]")
	}

	result.Rigid = len(result.Issues) == 0
	return result
}

// IsRigidMatrix reports whether m is a rigid transform within RigidTolerance.
func IsRigidMatrix(m [16]float64) bool {
	return ValidateRigid(m, RigidTolerance).Rigid
}

// IsRigid reports whether the affine transform happens to be rigid.
func (a Affine) IsRigid() bool {
	return IsRigidMatrix(a.m)
}
