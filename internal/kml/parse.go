package kml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/mortac8/czml-writer/internal/geometry"
)

type kmlRoot struct {
	XMLName    xml.Name      `xml:"kml"`
	Document   *documentElem `xml:"Document"`
	Placemarks []placemark   `xml:"Placemark"`
}

type documentElem struct {
	Name       string      `xml:"name"`
	Folders    []folder    `xml:"Folder"`
	Placemarks []placemark `xml:"Placemark"`
}

type folder struct {
	Name       string      `xml:"name"`
	Folders    []folder    `xml:"Folder"`
	Placemarks []placemark `xml:"Placemark"`
}

type placemark struct {
	Name          string         `xml:"name"`
	Polygon       *polygonElem   `xml:"Polygon"`
	MultiGeometry *multiGeometry `xml:"MultiGeometry"`
}

type multiGeometry struct {
	Polygons []polygonElem `xml:"Polygon"`
}

type polygonElem struct {
	Outer boundary   `xml:"outerBoundaryIs"`
	Inner []boundary `xml:"innerBoundaryIs"`
}

type boundary struct {
	Ring linearRing `xml:"LinearRing"`
}

type linearRing struct {
	Coordinates string `xml:"coordinates"`
}

// Parse decodes a KML document and extracts every placemark that carries
// polygon geometry, walking nested folders. Placemarks without polygons are
// dropped.
func Parse(data []byte) (*Document, error) {
	var root kmlRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed decoding KML document: %w", err)
	}

	doc := &Document{}

	var placemarks []placemark
	placemarks = append(placemarks, root.Placemarks...)
	if root.Document != nil {
		doc.Name = root.Document.Name
		placemarks = append(placemarks, collect(root.Document.Placemarks, root.Document.Folders)...)
	}

	for _, pm := range placemarks {
		parsed, err := pm.parse()
		if err != nil {
			return nil, fmt.Errorf("failed parsing placemark %q: %w", pm.Name, err)
		}
		if len(parsed.Polygons) == 0 {
			continue
		}
		doc.Placemarks = append(doc.Placemarks, parsed)
	}

	return doc, nil
}

func collect(placemarks []placemark, folders []folder) []placemark {
	out := append([]placemark{}, placemarks...)
	for _, f := range folders {
		out = append(out, collect(f.Placemarks, f.Folders)...)
	}
	return out
}

func (pm placemark) parse() (Placemark, error) {
	p := Placemark{Name: pm.Name}

	var elems []polygonElem
	if pm.Polygon != nil {
		elems = append(elems, *pm.Polygon)
	}
	if pm.MultiGeometry != nil {
		elems = append(elems, pm.MultiGeometry.Polygons...)
	}

	for _, elem := range elems {
		polygon, err := elem.parse()
		if err != nil {
			return Placemark{}, err
		}
		p.Polygons = append(p.Polygons, polygon)
	}

	return p, nil
}

func (pe polygonElem) parse() (Polygon, error) {
	outer, err := parseCoordinates(pe.Outer.Ring.Coordinates)
	if err != nil {
		return Polygon{}, fmt.Errorf("failed parsing outer boundary: %w", err)
	}

	polygon := Polygon{Outer: outer}
	for i, inner := range pe.Inner {
		hole, err := parseCoordinates(inner.Ring.Coordinates)
		if err != nil {
			return Polygon{}, fmt.Errorf("failed parsing inner boundary %d: %w", i, err)
		}
		polygon.Holes = append(polygon.Holes, hole)
	}

	return polygon, nil
}

// parseCoordinates reads a KML coordinate list: whitespace-separated tuples
// of "lon,lat" or "lon,lat,alt". A missing altitude is carried as zero.
func parseCoordinates(s string) (geometry.Ring, error) {
	var ring geometry.Ring
	for _, tuple := range strings.Fields(s) {
		parts := strings.Split(tuple, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, &ParseError{Tuple: tuple, Err: fmt.Errorf("want 2 or 3 components, got %d", len(parts))}
		}

		var coords [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, &ParseError{Tuple: tuple, Err: err}
			}
			coords[i] = v
		}

		ring = append(ring, r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]})
	}

	return ring, nil
}
