package bench

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/isometry-bench/internal/geometry"
)

// verify checks the identities the timed loops rely on for one transform in
// all three forms: T∘T⁻¹ is the identity and the forms act alike on p.
func verify(iso geometry.Isometry, isom geometry.IsometryMatrix, trans geometry.Affine, p r3.Vec, tol float64) []string {
	var issues []string

	if !geometry.IsApproxIdentity(iso.Mul(iso.Inverse()).ToHomogeneous(), tol) {
		issues = append(issues, "isometry composed with inverse is not identity")
	}
	if !geometry.IsApproxIdentity(isom.Mul(isom.Inverse()).ToHomogeneous(), tol) {
		issues = append(issues, "isometry matrix composed with inverse is not identity")
	}
	if inv, ok := trans.TryInverse(); !ok {
		issues = append(issues, "transform has no inverse")
	} else if !geometry.IsApproxIdentity(trans.Mul(inv).Matrix(), tol) {
		issues = append(issues, "transform composed with inverse is not identity")
	}

	want := iso.TransformPoint(p)
	if !geometry.VecApproxEqual(isom.TransformPoint(p), want, tol) {
		issues = append(issues, "isometry matrix disagrees with isometry on point")
	}
	if !geometry.VecApproxEqual(trans.TransformPoint(p), want, tol) {
		issues = append(issues, "transform disagrees with isometry on point")
	}
	return issues
}
