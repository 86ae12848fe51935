package bench

// Representation names one of the benchmarked transform types. The string
// value is the label used in reports.
type Representation string

const (
	RepresentationTransform      Representation = "Transform"
	RepresentationIsometry       Representation = "Isometry"
	RepresentationIsometryMatrix Representation = "IsometryMatrix"
)

// Representations lists every representation in run and report order.
var Representations = []Representation{
	RepresentationTransform,
	RepresentationIsometry,
	RepresentationIsometryMatrix,
}
