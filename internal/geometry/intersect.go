package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Edge is the pair of adjacent ring vertices bounding an intersected segment.
type Edge struct {
	A, B r3.Vector
}

// IntersectRayWithRing casts a horizontal ray from p in the +x direction and
// returns the nearest point where the supporting line of one of ring's edges
// crosses it, together with the edge that produced the crossing. Exactly
// horizontal edges are skipped. The returned point carries z = 0.
//
// ErrNoIntersection is returned when no supporting line crosses the ray at
// x >= p.X; for a point strictly inside a simple ring this cannot happen.
func IntersectRayWithRing(p r3.Vector, ring Ring) (r3.Vector, Edge, error) {
	if err := ring.Validate(); err != nil {
		return r3.Vector{}, Edge{}, err
	}

	found := false
	var nearest float64
	var hit Edge
	for i := range ring {
		v1 := ring[i]
		v2 := ring[(i+1)%len(ring)]

		m := (v2.Y - v1.Y) / (v2.X - v1.X)
		if m == 0 {
			continue
		}

		x := v1.X + (p.Y-v1.Y)/m
		if math.IsNaN(x) || x < p.X {
			continue
		}

		if !found || x-p.X < nearest {
			found = true
			nearest = x - p.X
			hit = Edge{A: v1, B: v2}
		}
	}

	if !found {
		return r3.Vector{}, Edge{}, ErrNoIntersection
	}

	return r3.Vector{X: p.X + nearest, Y: p.Y}, hit, nil
}
