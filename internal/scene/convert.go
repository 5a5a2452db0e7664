package scene

import (
	"fmt"

	"github.com/mortac8/czml-writer/internal/czml"
	"github.com/mortac8/czml-writer/internal/geometry"
	"github.com/mortac8/czml-writer/internal/kml"
)

// Flatten converts one placemark polygon into a CZML polygon packet. Every
// hole is spliced into the outer boundary first, so the packet carries a
// single simple ring.
//
// Reflex classification inside the hole elimination assumes a
// counter-clockwise outer ring; KML writers emit both windings, so the
// outer ring is reversed here when needed.
func Flatten(id string, name string, p kml.Polygon) (czml.Packet, error) {
	outer := p.Outer
	if err := outer.Validate(); err != nil {
		return czml.Packet{}, fmt.Errorf("invalid outer boundary: %w", err)
	}
	if !geometry.IsCounterClockwise(outer) {
		outer = geometry.Reverse(outer)
	}

	ring, err := geometry.EliminateAllHoles(outer, p.Holes)
	if err != nil {
		return czml.Packet{}, fmt.Errorf("failed eliminating holes: %w", err)
	}

	outline := true
	return czml.Packet{
		ID:   id,
		Name: name,
		Polygon: &czml.Polygon{
			Positions: czml.PositionList{Cartesian: czml.FlattenRing(ring)},
			Outline:   &outline,
		},
	}, nil
}
