package geometry

import "testing"

func TestMutuallyVisibleVertexConvexOuter(t *testing.T) {
	outer := Ring{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	holes := []Ring{{pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2)}}

	// The ray from (2,1) exits through the right wall at (4,1); the wall's
	// farther-right endpoint under the tie-break is (4,4), and a convex
	// outer ring has nothing to occlude it.
	got, err := MutuallyVisibleVertex(outer, holes)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 2 {
		t.Fatalf("visible index = %d, want 2 (vertex (4,4))", got)
	}
}

func TestMutuallyVisibleVertexOccludedByReflex(t *testing.T) {
	// A near-horizontal spike pokes from the left wall into the interior
	// at y ~ 3.5. Its tip lies inside the triangle spanned by the hole
	// vertex (3,1.5), the wall crossing (8,1.5), and the wall top (8,8),
	// so the tip occludes the wall top and becomes the bridge endpoint.
	outer := Ring{
		pt(0, 0), pt(8, 0), pt(8, 8), pt(0, 8),
		pt(0, 3.55), pt(5, 3.5), pt(0, 3.45),
	}
	holes := []Ring{{pt(2, 1.5), pt(3, 1.5), pt(3, 2.5), pt(2, 2.5)}}

	got, err := MutuallyVisibleVertex(outer, holes)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 5 {
		t.Fatalf("visible index = %d, want 5 (spike tip (5,3.5))", got)
	}
}

func TestMutuallyVisibleVertexRayHitsOuterVertex(t *testing.T) {
	// The hole vertex (2,4) casts its ray straight into the outer
	// vertex (4,4); that vertex is immediately mutually visible.
	outer := Ring{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 8)}
	holes := []Ring{{pt(2, 4), pt(1, 4), pt(1, 3.5), pt(2, 3.5)}}

	got, err := MutuallyVisibleVertex(outer, holes)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 2 {
		t.Fatalf("visible index = %d, want 2 (vertex (4,4))", got)
	}
}

func TestMutuallyVisibleVertexEmptyHoles(t *testing.T) {
	outer := Ring{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	if _, err := MutuallyVisibleVertex(outer, nil); err != ErrNoHoles {
		t.Fatalf("err = %v, want ErrNoHoles", err)
	}
}
