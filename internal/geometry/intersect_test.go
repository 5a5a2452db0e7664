package geometry

import (
	"math"
	"testing"
)

func TestIntersectRayWithRing(t *testing.T) {
	square := Ring{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}

	got, edge, err := IntersectRayWithRing(pt(2, 1), square)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !EqualWithin(got, pt(4, 1), VertexTolerance) {
		t.Fatalf("intersection = %v, want (4,1)", got)
	}
	if !EqualWithin(edge.A, pt(4, 0), VertexTolerance) || !EqualWithin(edge.B, pt(4, 4), VertexTolerance) {
		t.Fatalf("edge = %v, want (4,0)-(4,4)", edge)
	}

	// The intersected edge must bracket the crossing's x at the query y,
	// and the crossing must carry the query's y.
	if got.Y != 1 {
		t.Errorf("intersection y = %v, want query y", got.Y)
	}
	if math.Min(edge.A.X, edge.B.X) > got.X || math.Max(edge.A.X, edge.B.X) < got.X {
		t.Errorf("edge %v does not bracket x=%v", edge, got.X)
	}
}

func TestIntersectRayNearestCrossingWins(t *testing.T) {
	// Two wall candidates at x=6 and x=8; the nearer must win.
	ring := Ring{pt(0, 0), pt(6, 0), pt(6, 4), pt(8, 4), pt(8, 8), pt(0, 8)}

	got, _, err := IntersectRayWithRing(pt(1, 2), ring)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !EqualWithin(got, pt(6, 2), VertexTolerance) {
		t.Fatalf("intersection = %v, want nearest crossing (6,2)", got)
	}
}

func TestIntersectRayNoCrossing(t *testing.T) {
	square := Ring{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}

	// Query point right of every edge; horizontal edges are skipped and
	// both vertical supporting lines lie to the left.
	_, _, err := IntersectRayWithRing(pt(10, 1), square)
	if err != ErrNoIntersection {
		t.Fatalf("err = %v, want ErrNoIntersection", err)
	}
}

func TestIntersectRayInvalidRing(t *testing.T) {
	_, _, err := IntersectRayWithRing(pt(0, 0), Ring{pt(1, 1), pt(2, 2)})
	if err != ErrInvalidRing {
		t.Fatalf("err = %v, want ErrInvalidRing", err)
	}
}
