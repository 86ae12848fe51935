package geometry

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// VecApproxEqual reports whether a and b agree component-wise within tol.
func VecApproxEqual(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// MatrixApproxEqual reports whether two homogeneous matrices agree
// element-wise within tol.
func MatrixApproxEqual(a, b [16]float64, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsApproxIdentity reports whether m is the identity within tol.
func IsApproxIdentity(m [16]float64, tol float64) bool {
	return MatrixApproxEqual(m, IdentityAffine().m, tol)
}
