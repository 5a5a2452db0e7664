// Package geometry flattens multiply-connected planar polygons into simple
// rings by bridging each hole into the outer boundary through a mutually
// visible vertex pair.
package geometry

import (
	"errors"

	"github.com/golang/geo/r3"
)

// Ring is an ordered cyclic sequence of points forming a closed polygon
// boundary. Edges run between consecutive points, wrapping from the last
// point back to the first. Rings are assumed simple and are expected to wind
// counter-clockwise when viewed from +z; a ring may carry a KML-style
// closing duplicate of its first vertex.
type Ring []r3.Vector

var (
	// ErrInvalidRing is returned for rings with fewer than 3 points.
	ErrInvalidRing = errors.New("geometry: ring needs at least 3 points")

	// ErrNoIntersection is returned when a horizontal ray crosses none of a
	// ring's edge supporting lines to the right of its origin.
	ErrNoIntersection = errors.New("geometry: no ray intersection with ring")

	// ErrNoVisibleVertex is returned when the resolved bridge endpoint
	// cannot be located among the outer ring's vertices.
	ErrNoVisibleVertex = errors.New("geometry: no mutually visible vertex on outer ring")

	// ErrNoHoles is returned when hole elimination is invoked on an empty
	// hole set.
	ErrNoHoles = errors.New("geometry: hole set is empty")
)

func (r Ring) Validate() error {
	if len(r) < 3 {
		return ErrInvalidRing
	}
	return nil
}

// RightmostVertexIndex returns the index of the first vertex achieving the
// ring's maximum x-coordinate. Ties keep the first occurrence; downstream
// visibility anchoring depends on this tie-break.
func RightmostVertexIndex(ring Ring) int {
	maxIndex := 0
	for i := 1; i < len(ring); i++ {
		if ring[i].X > ring[maxIndex].X {
			maxIndex = i
		}
	}
	return maxIndex
}

// RightmostRingIndex returns the index of the ring whose rightmost vertex has
// the overall maximum x-coordinate. Ties keep the first ring.
func RightmostRingIndex(rings []Ring) int {
	maxIndex := 0
	maxX := rings[0][RightmostVertexIndex(rings[0])].X
	for i := 1; i < len(rings); i++ {
		x := rings[i][RightmostVertexIndex(rings[i])].X
		if x > maxX {
			maxX = x
			maxIndex = i
		}
	}
	return maxIndex
}

// SignedArea returns the shoelace area of the ring projected onto the xy
// plane. Positive for counter-clockwise winding.
func SignedArea(ring Ring) float64 {
	var area float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func IsCounterClockwise(ring Ring) bool {
	return SignedArea(ring) > 0
}

// Reverse returns a fresh ring with the vertex order inverted.
func Reverse(ring Ring) Ring {
	out := make(Ring, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}
