package kml

import "github.com/mortac8/czml-writer/internal/geometry"

// Document is the parsed content of a KML source document, reduced to the
// placemarks that carry polygon geometry.
type Document struct {
	Name       string
	Placemarks []Placemark
}

type Placemark struct {
	Name     string
	Polygons []Polygon
}

// Polygon is a placemark boundary: one outer ring and zero or more inner
// rings describing holes. Rings keep the closing duplicate vertex exactly as
// the source document wrote it.
type Polygon struct {
	Outer geometry.Ring
	Holes []geometry.Ring
}
