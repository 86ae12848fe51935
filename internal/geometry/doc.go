// Package geometry holds the three rigid-transform representations that the
// benchmark compares:
//
//   - Isometry: unit quaternion rotation plus translation.
//   - IsometryMatrix: 3×3 rotation matrix plus translation.
//   - Affine: dense 4×4 homogeneous matrix with no structural guarantee.
//
// All arithmetic is delegated to gonum (spatial/r3, num/quat and mat).
// Values are immutable once constructed; every operation returns a new
// value. Homogeneous matrices use the row-major [16]float64 layout
// m00,m01,m02,m03, m10,... shared with pose handling elsewhere.
package geometry
