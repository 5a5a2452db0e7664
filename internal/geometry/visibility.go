package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// MutuallyVisibleVertex returns the index in outer of a vertex that can be
// joined to the rightmost vertex of the rightmost hole by a segment lying in
// the polygon's interior. The segment becomes the bridge along which the hole
// is spliced into the outer boundary.
func MutuallyVisibleVertex(outer Ring, holes []Ring) (int, error) {
	if err := outer.Validate(); err != nil {
		return 0, err
	}
	if len(holes) == 0 {
		return 0, ErrNoHoles
	}

	hole := holes[RightmostRingIndex(holes)]
	if err := hole.Validate(); err != nil {
		return 0, err
	}
	m := hole[RightmostVertexIndex(hole)]

	intersection, edge, err := IntersectRayWithRing(m, outer)
	if err != nil {
		return 0, err
	}

	// The ray may strike the outer ring exactly at a vertex; that vertex is
	// mutually visible by construction.
	for i, v := range outer {
		if EqualWithin(v, intersection, VertexTolerance) {
			return i, nil
		}
	}

	// Anchor on the intersected edge's farther-right endpoint, then check
	// whether any reflex vertex of the outer ring intrudes into the triangle
	// spanned by the hole vertex, the crossing, and the anchor. An intruding
	// reflex vertex occludes the anchor.
	p := edge.B
	if edge.A.X > edge.B.X {
		p = edge.A
	}

	var occluding []r3.Vector
	for _, r := range ReflexVertices(outer) {
		if EqualWithin(r, p, VertexTolerance) {
			continue
		}
		if PointInTriangle(m, intersection, p, r) {
			occluding = append(occluding, r)
		}
	}

	if len(occluding) == 0 {
		return indexOfVertex(outer, p)
	}

	// Of the occluding vertices, the one whose direction from m deviates
	// least from the +x axis is visible. Scan order breaks ties.
	visible := occluding[0]
	minAngle := math.Abs(math.Atan2(occluding[0].Y-m.Y, occluding[0].X-m.X))
	for _, r := range occluding[1:] {
		angle := math.Abs(math.Atan2(r.Y-m.Y, r.X-m.X))
		if angle < minAngle {
			minAngle = angle
			visible = r
		}
	}
	return indexOfVertex(outer, visible)
}

func indexOfVertex(ring Ring, p r3.Vector) (int, error) {
	for i, v := range ring {
		if EqualWithin(v, p, VertexTolerance) {
			return i, nil
		}
	}
	return 0, ErrNoVisibleVertex
}
