package geometry

import (
	"testing"

	"github.com/golang/geo/r3"
)

func pt(x, y float64) r3.Vector {
	return r3.Vector{X: x, Y: y}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := pt(0, 0), pt(0, 2), pt(2, 0)

	tests := []struct {
		name string
		p    r3.Vector
		want bool
	}{
		{"strictly inside", pt(0.5, 0.5), true},
		{"strictly outside", pt(2, 2), false},
		{"outside left", pt(-0.5, 1), false},
		{"on edge a-b", pt(0, 1), true},
		{"on edge a-c", pt(1, 0), true},
		{"on hypotenuse", pt(1, 1), false},
		{"vertex a", pt(0, 0), true},
	}
	for _, tt := range tests {
		if got := PointInTriangle(a, b, c, tt.p); got != tt.want {
			t.Errorf("%s: PointInTriangle(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestPointInTriangleDegenerate(t *testing.T) {
	// A zero-area triangle divides by zero; the NaN barycentric
	// coordinates must classify the point as outside.
	a := pt(1, 1)
	if PointInTriangle(a, a, a, a) {
		t.Error("degenerate triangle reported containment")
	}
}
