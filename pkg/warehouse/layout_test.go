package warehouse

import (
	"path/filepath"
	"reflect"
	"testing"
)

func sampleLayout() Layout {
	return Layout{Blocks: []Block{{
		ID:         "block_1",
		Position:   Point{X: -575, Y: 1500, Z: 400},
		Dimensions: Extent{Length: 3000, Width: 850, Height: 800},
		Racks: []RackFloor{
			{
				ID:         "rack-1-1-1-1",
				Position:   Point{X: -200, Y: 775, Z: 133},
				Dimensions: Extent{Length: 1450, Width: 405, Height: 266},
				Indices:    CellIndex{Floor: 1, Row: 1, Col: 1},
				Pallets: []Pallet{{
					Type:     "euro",
					Color:    DefaultPalletColor,
					Dims:     Extent{Length: 120, Width: 80, Height: 15},
					Position: CellIndex{Floor: 1, Row: 1, Col: 1},
				}},
			},
			{
				ID:         "rack-1-1-2-1",
				Position:   Point{X: 225, Y: 775, Z: 133},
				Dimensions: Extent{Length: 1450, Width: 405, Height: 266},
				Indices:    CellIndex{Floor: 1, Row: 1, Col: 2},
			},
		},
	}}}
}

func TestLayoutCounts(t *testing.T) {
	l := sampleLayout()
	if got := l.RackCount(); got != 2 {
		t.Errorf("RackCount() = %d, want 2", got)
	}
	if got := l.PalletCount(); got != 1 {
		t.Errorf("PalletCount() = %d, want 1", got)
	}

	var empty Layout
	if empty.RackCount() != 0 || empty.PalletCount() != 0 {
		t.Error("empty layout should count zero racks and pallets")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := sampleLayout()

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout error: %v", err)
	}
	back, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout error: %v", err)
	}
	if !reflect.DeepEqual(l, back) {
		t.Errorf("round trip changed layout:\n got %+v\nwant %+v", back, l)
	}
}

func TestUnmarshalLayoutRejectsEmpty(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"blocks": []}`)); err == nil {
		t.Error("layout without blocks should fail")
	}
	if _, err := UnmarshalLayout([]byte(`{not json`)); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	l := sampleLayout()

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile error: %v", err)
	}
	back, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile error: %v", err)
	}
	if back.Blocks[0].ID != "block_1" {
		t.Errorf("block id = %q, want block_1", back.Blocks[0].ID)
	}

	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("reading a missing file should fail")
	}
}
