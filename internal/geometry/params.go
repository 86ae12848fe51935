package geometry

import "gonum.org/v1/gonum/spatial/r3"

// RigidParams is the raw material for one rigid transform: an axis-angle
// rotation vector and a translation. All three representations built from
// the same params describe the same transform.
type RigidParams struct {
	AxisAngle   r3.Vec
	Translation r3.Vec
}

// Isometry returns the quaternion-backed representation.
func (p RigidParams) Isometry() Isometry {
	return NewIsometry(p.Translation, p.AxisAngle)
}

// IsometryMatrix returns the matrix-backed representation.
func (p RigidParams) IsometryMatrix() IsometryMatrix {
	return NewIsometryMatrix(p.Translation, p.AxisAngle)
}

// Affine returns the generic representation. The homogeneous matrix of the
// isometry is trusted as-is and not re-validated.
func (p RigidParams) Affine() Affine {
	return AffineFromMatrixUnchecked(p.Isometry().ToHomogeneous())
}
