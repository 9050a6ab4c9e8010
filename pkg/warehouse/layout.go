package warehouse

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout - Computed Warehouse Geometry
// =============================================================================

// Point is an absolute 3D center position in centimeters.
// X runs along the warehouse width (0 at the center line), Y along the
// length (0 at the front wall), Z along the height (0 at the floor).
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// Extent is a 3D size in centimeters.
type Extent struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Pallet is a resolved pallet attached to a rack-floor cell. Dimensions are
// canonical centimeters; Position is the original 1-based placement target.
type Pallet struct {
	Type     string    `json:"type" bson:"type"`
	Color    string    `json:"color" bson:"color"`
	Weight   float64   `json:"weight,omitempty" bson:"weight,omitempty"`
	Dims     Extent    `json:"dims" bson:"dims"`
	Position CellIndex `json:"position" bson:"position"`
}

// RackFloor is one storage cell: a single floor of a single rack, with its
// absolute center position, dimensions, 1-based indices, and any pallets
// placed there.
type RackFloor struct {
	ID         string    `json:"id" bson:"id"`
	Position   Point     `json:"position" bson:"position"`
	Dimensions Extent    `json:"dimensions" bson:"dimensions"`
	Indices    CellIndex `json:"indices" bson:"indices"`
	Pallets    []Pallet  `json:"pallets,omitempty" bson:"pallets,omitempty"`
}

// Block is one vertical slice of the warehouse: its envelope cuboid and all
// rack-floor cells inside it. Blocks are tiled along the width axis only.
type Block struct {
	ID         string      `json:"id" bson:"id"`
	Position   Point       `json:"position" bson:"position"`
	Dimensions Extent      `json:"dimensions" bson:"dimensions"`
	Racks      []RackFloor `json:"racks" bson:"racks"`
}

// Layout is the complete computed geometry for one warehouse. It is
// constructed fresh per engine call, immutable once returned, and carries no
// reference back into the configuration it was computed from.
type Layout struct {
	Blocks []Block `json:"blocks" bson:"blocks"`
}

// RackCount returns the total number of rack-floor cells across all blocks.
func (l Layout) RackCount() int {
	n := 0
	for _, b := range l.Blocks {
		n += len(b.Racks)
	}
	return n
}

// PalletCount returns the total number of attached pallets across all blocks.
func (l Layout) PalletCount() int {
	n := 0
	for _, b := range l.Blocks {
		for _, r := range b.Racks {
			n += len(r.Pallets)
		}
	}
	return n
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that at least one block is present.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if len(l.Blocks) == 0 {
		return Layout{}, fmt.Errorf("layout must contain blocks")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
