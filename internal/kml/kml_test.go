package kml

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>test doc</name>
    <Placemark>
      <name>donut</name>
      <Polygon>
        <outerBoundaryIs>
          <LinearRing>
            <coordinates>
              0,0,0 4,0,0 4,4,0 0,4,0 0,0,0
            </coordinates>
          </LinearRing>
        </outerBoundaryIs>
        <innerBoundaryIs>
          <LinearRing>
            <coordinates>1,1 2,1 2,2 1,2 1,1</coordinates>
          </LinearRing>
        </innerBoundaryIs>
      </Polygon>
    </Placemark>
    <Folder>
      <name>nested</name>
      <Placemark>
        <name>plain</name>
        <Polygon>
          <outerBoundaryIs>
            <LinearRing>
              <coordinates>10,10,1 12,10,1 11,12,1 10,10,1</coordinates>
            </LinearRing>
          </outerBoundaryIs>
        </Polygon>
      </Placemark>
      <Placemark>
        <name>no geometry</name>
      </Placemark>
    </Folder>
  </Document>
</kml>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleKML))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if doc.Name != "test doc" {
		t.Errorf("document name = %q, want %q", doc.Name, "test doc")
	}
	if len(doc.Placemarks) != 2 {
		t.Fatalf("parsed %d placemarks, want 2 (geometry-free ones dropped)", len(doc.Placemarks))
	}

	donut := doc.Placemarks[0]
	if donut.Name != "donut" {
		t.Errorf("placemark name = %q, want %q", donut.Name, "donut")
	}
	if len(donut.Polygons) != 1 {
		t.Fatalf("donut has %d polygons, want 1", len(donut.Polygons))
	}

	polygon := donut.Polygons[0]
	if len(polygon.Outer) != 5 {
		t.Errorf("outer ring has %d vertices, want 5 (closing duplicate kept)", len(polygon.Outer))
	}
	if len(polygon.Holes) != 1 || len(polygon.Holes[0]) != 5 {
		t.Fatalf("holes = %v, want one 5-vertex ring", polygon.Holes)
	}
	if polygon.Outer[1].X != 4 || polygon.Outer[1].Y != 0 {
		t.Errorf("outer[1] = %v, want (4,0)", polygon.Outer[1])
	}

	// Two-component tuples carry altitude zero; three-component tuples
	// keep theirs.
	if polygon.Holes[0][0].Z != 0 {
		t.Errorf("hole altitude = %v, want 0", polygon.Holes[0][0].Z)
	}
	nested := doc.Placemarks[1]
	if nested.Polygons[0].Outer[0].Z != 1 {
		t.Errorf("nested altitude = %v, want 1", nested.Polygons[0].Outer[0].Z)
	}
}

func TestParseBadCoordinates(t *testing.T) {
	bad := strings.Replace(sampleKML, "1,1 2,1 2,2 1,2 1,1", "1,1 nope 2,2", 1)

	_, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("expected error for malformed coordinate tuple")
	}
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestClientFetch(t *testing.T) {
	c := &Client{
		HTTP: doerFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(sampleKML)),
			}, nil
		}),
	}

	doc, err := c.Fetch(context.Background(), "http://example.com/test.kml")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(doc.Placemarks) != 2 {
		t.Fatalf("fetched %d placemarks, want 2", len(doc.Placemarks))
	}
}

func TestClientFetchBadStatus(t *testing.T) {
	c := &Client{
		HTTP: doerFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(strings.NewReader("")),
			}, nil
		}),
	}

	_, err := c.Fetch(context.Background(), "http://example.com/missing.kml")
	statusErr, ok := err.(*StatusCodeError)
	if !ok {
		t.Fatalf("err = %v, want *StatusCodeError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}
