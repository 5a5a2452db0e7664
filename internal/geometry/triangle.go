package geometry

import "github.com/golang/geo/r3"

// PointInTriangle reports whether p lies inside the triangle (a, b, c) using
// barycentric coordinates. Points on the two edges meeting at a count as
// inside; points on the edge from b to c do not. A degenerate triangle
// divides by a near-zero denominator and the resulting NaN coordinates
// compare false, so the point reports as outside.
func PointInTriangle(a, b, c, p r3.Vector) bool {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	inv := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv

	return u >= 0 && v >= 0 && u+v < 1
}
