package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// VertexTolerance is the default tolerance used when matching ring vertices
// against computed points, such as the bridge endpoint produced by the
// visibility search. Coordinates that have been through an upstream transform
// rarely compare exactly equal.
const VertexTolerance = 1e-9

// EqualWithin reports whether a and b agree on every coordinate within tol.
func EqualWithin(a, b r3.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
