package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// IsometryMatrix is a rigid transform stored as a 3×3 rotation matrix and
// a translation. The matrix is never mutated after construction, so copies
// of an IsometryMatrix may share it.
type IsometryMatrix struct {
	Rotation    *r3.Mat
	Translation r3.Vec
}

// IdentityIsometryMatrix returns the identity transform.
func IdentityIsometryMatrix() IsometryMatrix {
	return IsometryMatrix{Rotation: r3.NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})}
}

// NewIsometryMatrix builds an isometry from a translation and an axis-angle
// rotation vector.
func NewIsometryMatrix(translation, axisAngle r3.Vec) IsometryMatrix {
	return IsometryMatrix{Rotation: RotationMatrix(axisAngle), Translation: translation}
}

// RotationMatrix returns the orthonormal matrix for an axis-angle vector.
func RotationMatrix(axisAngle r3.Vec) *r3.Mat {
	rows := rotationRows(r3.Rotation(QuaternionFromAxisAngle(axisAngle)).Rotate)
	return r3.NewMat(rows[:])
}

// Mul composes a and b: rotation product plus a's rotation of b's
// translation.
func (a IsometryMatrix) Mul(b IsometryMatrix) IsometryMatrix {
	r := r3.NewMat(nil)
	r.Mul(a.Rotation, b.Rotation)
	return IsometryMatrix{
		Rotation:    r,
		Translation: r3.Add(a.Rotation.MulVec(b.Translation), a.Translation),
	}
}

// Inverse transposes the rotation and rotates the negated translation.
// It is defined for every isometry.
func (a IsometryMatrix) Inverse() IsometryMatrix {
	rt := transpose(a.Rotation)
	return IsometryMatrix{
		Rotation:    rt,
		Translation: r3.Scale(-1, rt.MulVec(a.Translation)),
	}
}

// TransformPoint applies the isometry to p.
func (a IsometryMatrix) TransformPoint(p r3.Vec) r3.Vec {
	return r3.Add(a.Rotation.MulVec(p), a.Translation)
}

// ToHomogeneous expands the isometry into its 4×4 row-major matrix.
func (a IsometryMatrix) ToHomogeneous() [16]float64 {
	var r [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = a.Rotation.At(i, j)
		}
	}
	return homogeneous(r, a.Translation)
}

func transpose(m *r3.Mat) *r3.Mat {
	var data [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data[j*3+i] = m.At(i, j)
		}
	}
	return r3.NewMat(data[:])
}
