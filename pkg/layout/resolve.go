package layout

import (
	"fmt"

	"github.com/palletlab/warevis/pkg/warehouse"
)

// envelope is a block's cuboid in canonical centimeters: its center x on the
// width axis plus its full extents.
type envelope struct {
	X      float64
	Width  float64
	Length float64
	Height float64
}

// resolveBlock walks the row → column → floor grid of one block and emits a
// rack-floor cell for every floor of every rack, attaching pallets whose
// 1-based position matches the cell's indices.
//
// A running rack counter stops emission when the configured rack total is
// exhausted, even mid-row. Inter-rack gaps are indexed by column and reused
// across rows; entries missing from the gap list contribute 0.
func resolveBlock(index int, env envelope, b warehouse.BlockConfig) ([]warehouse.RackFloor, error) {
	rc := b.Rack
	if rc.Racks == 0 {
		return nil, nil
	}

	wallUnit := unitOr(rc.WallGapUnit, warehouse.DefaultUnit)
	gapFront, err := ToCentimeters(rc.GapFront.Float64(), wallUnit)
	if err != nil {
		return nil, err
	}
	gapBack, err := ToCentimeters(rc.GapBack.Float64(), wallUnit)
	if err != nil {
		return nil, err
	}
	gapLeft, err := ToCentimeters(rc.GapLeft.Float64(), wallUnit)
	if err != nil {
		return nil, err
	}
	gapRight, err := ToCentimeters(rc.GapRight.Float64(), wallUnit)
	if err != nil {
		return nil, err
	}

	availWidth := env.Width - gapLeft - gapRight
	availLength := env.Length - gapFront - gapBack

	perRow := rc.RacksPerRow()
	gaps, err := rackGaps(rc, perRow)
	if err != nil {
		return nil, err
	}

	rackWidth, err := RackWidth(availWidth, gaps, perRow)
	if err != nil {
		return nil, err
	}
	// Rows tile the available length contiguously front-to-back; the
	// inter-row aisle is part of each row's length share, not a separate gap.
	rackLength, _, err := Split("rack length", availLength, rc.Rows, 0)
	if err != nil {
		return nil, err
	}
	// Floors divide the full warehouse height uniformly.
	floorHeight, _, err := Split("floor height", env.Height, rc.Floors, 0)
	if err != nil {
		return nil, err
	}

	pallets, err := convertPallets(b.Pallets)
	if err != nil {
		return nil, err
	}

	cells := make([]warehouse.RackFloor, 0, rc.Racks*rc.Floors)
	count := 0
	for r := 0; r < rc.Rows && count < rc.Racks; r++ {
		x := env.X - env.Width/2 + gapLeft + rackWidth/2
		y := gapFront + float64(r)*rackLength + rackLength/2

		for c := 0; c < perRow; c++ {
			if count >= rc.Racks {
				break
			}
			if c > 0 {
				x += gapAt(gaps, c-1)
			}

			for f := 0; f < rc.Floors; f++ {
				z := float64(f)*floorHeight + floorHeight/2

				cell := warehouse.RackFloor{
					ID:         fmt.Sprintf("rack-%d-%d-%d-%d", index, r, c, f),
					Position:   warehouse.Point{X: x, Y: y, Z: z},
					Dimensions: warehouse.Extent{Length: rackLength, Width: rackWidth, Height: floorHeight},
					Indices:    warehouse.CellIndex{Floor: f + 1, Row: r + 1, Col: c + 1},
				}

				// Linear scan over the block's pallets. No index is built:
				// pallet counts are small (tens) and the scan keeps the
				// resolver allocation-free on the miss path.
				for _, p := range pallets {
					if p.Position == cell.Indices {
						cell.Pallets = append(cell.Pallets, p)
					}
				}

				cells = append(cells, cell)
			}

			x += rackWidth
			count++
		}
	}

	return cells, nil
}

// rackGaps returns the inter-rack gaps in centimeters. When no custom gaps
// are configured, the uniform gap_between_racks fallback is expanded to one
// entry per inter-rack slot.
func rackGaps(rc warehouse.RackConfig, perRow int) ([]float64, error) {
	gapUnit := unitOr(rc.GapUnit, warehouse.DefaultUnit)

	if len(rc.CustomGaps) == 0 {
		if rc.GapBetweenRacks == 0 || perRow < 2 {
			return nil, nil
		}
		uniform, err := ToCentimeters(rc.GapBetweenRacks.Float64(), gapUnit)
		if err != nil {
			return nil, err
		}
		gaps := make([]float64, perRow-1)
		for i := range gaps {
			gaps[i] = uniform
		}
		return gaps, nil
	}

	gaps := make([]float64, len(rc.CustomGaps))
	for i, g := range rc.CustomGaps {
		cm, err := ToCentimeters(g.Float64(), gapUnit)
		if err != nil {
			return nil, err
		}
		gaps[i] = cm
	}
	return gaps, nil
}

// convertPallets normalizes pallet dimensions to centimeters and fills the
// default color. Weight is passed through as supplied.
func convertPallets(configs []warehouse.PalletConfig) ([]warehouse.Pallet, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	pallets := make([]warehouse.Pallet, 0, len(configs))
	for _, p := range configs {
		unit := unitOr(p.Unit, warehouse.DefaultUnit)

		length, err := ToCentimeters(p.Length.Float64(), unit)
		if err != nil {
			return nil, err
		}
		width, err := ToCentimeters(p.Width.Float64(), unit)
		if err != nil {
			return nil, err
		}
		height, err := ToCentimeters(p.Height.Float64(), unit)
		if err != nil {
			return nil, err
		}

		color := p.Color
		if color == "" {
			color = warehouse.DefaultPalletColor
		}

		pallets = append(pallets, warehouse.Pallet{
			Type:     p.Type,
			Color:    color,
			Weight:   p.Weight.Float64(),
			Dims:     warehouse.Extent{Length: length, Width: width, Height: height},
			Position: p.Position,
		})
	}
	return pallets, nil
}
