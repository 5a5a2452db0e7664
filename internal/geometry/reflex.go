package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// ReflexVertices returns the vertices of ring whose interior angle exceeds a
// straight angle, in traversal order. The classification assumes the ring
// winds counter-clockwise viewed from +z; a clockwise ring reports its convex
// vertices instead. This is an input contract, not corrected here.
func ReflexVertices(ring Ring) []r3.Vector {
	var reflex []r3.Vector
	n := len(ring)
	for i := 0; i < n; i++ {
		p0 := ring[(i+n-1)%n]
		p1 := ring[i]
		p2 := ring[(i+1)%n]

		u := p0.Sub(p1)
		v := p2.Sub(p1)

		// Perpendicular of u in the xy plane, z forced to zero. The signed
		// angle from u to v is negative exactly when the interior angle at
		// p1 is reflex.
		perp := r3.Vector{X: u.Y, Y: -u.X}

		if math.Atan2(v.Dot(perp), v.Dot(u)) < 0 {
			reflex = append(reflex, p1)
		}
	}
	return reflex
}
