// Package czml builds CZML documents: JSON arrays of packets describing
// scene primitives for a Cesium-style renderer.
package czml

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mortac8/czml-writer/internal/geometry"
)

// Version is the CZML schema version written into every document packet.
const Version = "1.0"

type Packet struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Version string   `json:"version,omitempty"`
	Polygon *Polygon `json:"polygon,omitempty"`
}

// Polygon is a polygon primitive. Positions carries the flattened simple
// boundary; the renderer never sees holes, they are spliced into the
// boundary before a packet is built.
type Polygon struct {
	Positions PositionList `json:"positions"`
	Fill      *bool        `json:"fill,omitempty"`
	Outline   *bool        `json:"outline,omitempty"`
	Material  *Material    `json:"material,omitempty"`
}

type PositionList struct {
	Cartesian []float64 `json:"cartesian"`
}

type Material struct {
	SolidColor *SolidColor `json:"solidColor,omitempty"`
}

type SolidColor struct {
	Color Color `json:"color"`
}

type Color struct {
	RGBA [4]int `json:"rgba"`
}

// Document is an ordered packet collection headed by the mandatory document
// packet.
type Document struct {
	Name    string
	Packets []Packet
}

func NewDocument(name string) *Document {
	return &Document{Name: name}
}

func (d *Document) Append(p Packet) {
	d.Packets = append(d.Packets, p)
}

// Marshal renders the document as a CZML packet array, prepending the
// document packet.
func (d *Document) Marshal() ([]byte, error) {
	packets := make([]Packet, 0, len(d.Packets)+1)
	packets = append(packets, Packet{
		ID:      "document",
		Name:    d.Name,
		Version: Version,
	})
	packets = append(packets, d.Packets...)

	data, err := json.Marshal(packets)
	if err != nil {
		return nil, fmt.Errorf("failed encoding CZML document %q: %w", d.Name, err)
	}

	return data, nil
}

func (d *Document) Write(w io.Writer) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed writing CZML document %q: %w", d.Name, err)
	}

	return nil
}

// FlattenRing lays a ring's vertices out as the x,y,z triples a polygon
// packet's position list carries.
func FlattenRing(ring geometry.Ring) []float64 {
	flat := make([]float64, 0, len(ring)*3)
	for _, v := range ring {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	return flat
}
