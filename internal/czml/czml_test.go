package czml

import (
	"encoding/json"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/mortac8/czml-writer/internal/geometry"
)

func TestDocumentMarshal(t *testing.T) {
	doc := NewDocument("demo")
	doc.Append(Packet{
		ID:   "polygon-1",
		Name: "first",
		Polygon: &Polygon{
			Positions: PositionList{Cartesian: []float64{0, 0, 0, 4, 0, 0, 4, 4, 0}},
		},
	})

	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var packets []map[string]any
	if err := json.Unmarshal(data, &packets); err != nil {
		t.Fatalf("output is not a JSON array of packets: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("marshalled %d packets, want 2", len(packets))
	}

	head := packets[0]
	if head["id"] != "document" || head["version"] != Version {
		t.Errorf("document packet = %v, want id=document version=%s", head, Version)
	}
	if _, ok := head["polygon"]; ok {
		t.Error("document packet carries a polygon")
	}

	body := packets[1]
	if body["id"] != "polygon-1" {
		t.Errorf("packet id = %v, want polygon-1", body["id"])
	}
	polygon, ok := body["polygon"].(map[string]any)
	if !ok {
		t.Fatalf("packet has no polygon object: %v", body)
	}
	positions := polygon["positions"].(map[string]any)
	cartesian := positions["cartesian"].([]any)
	if len(cartesian) != 9 {
		t.Errorf("cartesian has %d values, want 9", len(cartesian))
	}
}

func TestFlattenRing(t *testing.T) {
	ring := geometry.Ring{
		r3.Vector{X: 1, Y: 2, Z: 3},
		r3.Vector{X: 4, Y: 5, Z: 6},
		r3.Vector{X: 7, Y: 8, Z: 9},
	}

	got := FlattenRing(ring)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("FlattenRing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FlattenRing[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
