package geometry

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Isometry is a rigid transform stored as a unit quaternion and a
// translation. Applied to a point it rotates first, then translates.
type Isometry struct {
	Rotation    quat.Number
	Translation r3.Vec
}

// IdentityIsometry returns the isometry that leaves every point in place.
func IdentityIsometry() Isometry {
	return Isometry{Rotation: quat.Number{Real: 1}}
}

// NewIsometry builds an isometry from a translation and an axis-angle
// rotation vector.
func NewIsometry(translation, axisAngle r3.Vec) Isometry {
	return Isometry{Rotation: QuaternionFromAxisAngle(axisAngle), Translation: translation}
}

// QuaternionFromAxisAngle converts an axis-angle vector (direction is the
// axis, norm is the angle in radians) to a unit quaternion. The zero vector
// maps to the identity rotation.
func QuaternionFromAxisAngle(v r3.Vec) quat.Number {
	angle := r3.Norm(v)
	if angle == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Number(r3.NewRotation(angle, v))
}

// Mul composes a and b so that a.Mul(b) applied to p equals a applied to b
// applied to p.
func (a Isometry) Mul(b Isometry) Isometry {
	return Isometry{
		Rotation:    quat.Mul(a.Rotation, b.Rotation),
		Translation: r3.Add(a.Translation, r3.Rotation(a.Rotation).Rotate(b.Translation)),
	}
}

// Inverse returns the analytic inverse: the conjugate rotation and the
// negated translation rotated by it. It is defined for every isometry.
func (a Isometry) Inverse() Isometry {
	inv := quat.Conj(a.Rotation)
	return Isometry{
		Rotation:    inv,
		Translation: r3.Scale(-1, r3.Rotation(inv).Rotate(a.Translation)),
	}
}

// TransformPoint applies the isometry to p.
func (a Isometry) TransformPoint(p r3.Vec) r3.Vec {
	return r3.Add(r3.Rotation(a.Rotation).Rotate(p), a.Translation)
}

// ToHomogeneous expands the isometry into its 4×4 row-major matrix.
func (a Isometry) ToHomogeneous() [16]float64 {
	return homogeneous(rotationRows(r3.Rotation(a.Rotation).Rotate), a.Translation)
}

// rotationRows samples a rotation on the basis vectors and returns the
// corresponding 3×3 matrix in row-major order.
func rotationRows(rotate func(r3.Vec) r3.Vec) [9]float64 {
	cx := rotate(r3.Vec{X: 1})
	cy := rotate(r3.Vec{Y: 1})
	cz := rotate(r3.Vec{Z: 1})
	return [9]float64{
		cx.X, cy.X, cz.X,
		cx.Y, cy.Y, cz.Y,
		cx.Z, cy.Z, cz.Z,
	}
}

func homogeneous(r [9]float64, t r3.Vec) [16]float64 {
	return [16]float64{
		r[0], r[1], r[2], t.X,
		r[3], r[4], r[5], t.Y,
		r[6], r[7], r[8], t.Z,
		0, 0, 0, 1,
	}
}
