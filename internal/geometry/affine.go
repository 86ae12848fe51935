package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNotAffine is returned by AffineFromMatrix when the bottom row of the
// matrix is not [0 0 0 1] or an element is not finite.
var ErrNotAffine = errors.New("matrix is not an affine transform")

// Affine is a generic affine transform held as a dense 4×4 homogeneous
// matrix in row-major order. Nothing guarantees the upper-left block is a
// rotation, so inversion may fail.
type Affine struct {
	m [16]float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// AffineFromMatrixUnchecked wraps m without inspecting it. The caller
// vouches that m is a valid affine matrix.
func AffineFromMatrixUnchecked(m [16]float64) Affine {
	return Affine{m: m}
}

// AffineFromMatrix wraps m after checking that it has the affine bottom row
// and only finite elements.
func AffineFromMatrix(m [16]float64) (Affine, error) {
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Affine{}, fmt.Errorf("%w: element %d is %v", ErrNotAffine, i, v)
		}
	}
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return Affine{}, fmt.Errorf("%w: bottom row is [%g %g %g %g]", ErrNotAffine, m[12], m[13], m[14], m[15])
	}
	return Affine{m: m}, nil
}

// Matrix returns a copy of the row-major homogeneous matrix.
func (a Affine) Matrix() [16]float64 {
	return a.m
}

// Mul composes a and b with a 4×4 matrix product.
func (a Affine) Mul(b Affine) Affine {
	var out [16]float64
	dst := mat.NewDense(4, 4, out[:])
	dst.Mul(a.dense(), b.dense())
	copy(out[:], dst.RawMatrix().Data)
	return Affine{m: out}
}

// TryInverse returns the general matrix inverse. ok is false when the
// matrix is singular or too ill-conditioned for the result to be trusted.
func (a Affine) TryInverse() (inv Affine, ok bool) {
	var out [16]float64
	dst := mat.NewDense(4, 4, out[:])
	if err := dst.Inverse(a.dense()); err != nil {
		return Affine{}, false
	}
	copy(out[:], dst.RawMatrix().Data)
	return Affine{m: out}, true
}

// TransformPoint applies the affine map to p. The bottom row is not used,
// so no projective division happens.
func (a Affine) TransformPoint(p r3.Vec) r3.Vec {
	m := &a.m
	return r3.Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

func (a Affine) dense() *mat.Dense {
	m := a.m
	return mat.NewDense(4, 4, m[:])
}
