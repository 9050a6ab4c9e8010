package layout

import (
	"fmt"

	"github.com/palletlab/warevis/pkg/warehouse"
)

// CreateLayout computes the full 3D layout for a warehouse configuration.
//
// The configuration is structurally validated first, then every supplied
// length is normalized to centimeters, the warehouse width is allocated
// among blocks, and each block's rack grid is resolved into rack-floor
// cells with their pallets attached.
//
// Errors carry one of three codes: MALFORMED_CONFIG (structural mismatch),
// UNSUPPORTED_UNIT (unknown unit string), or INSUFFICIENT_SPACE (a computed
// slot size is zero or negative). On error no partial layout is returned.
func CreateLayout(cfg warehouse.Config) (warehouse.Layout, error) {
	if err := cfg.Validate(); err != nil {
		return warehouse.Layout{}, err
	}

	whUnit := unitOr(cfg.Dimensions.Unit, warehouse.DefaultUnit)
	length, err := ToCentimeters(cfg.Dimensions.Length.Float64(), whUnit)
	if err != nil {
		return warehouse.Layout{}, err
	}
	width, err := ToCentimeters(cfg.Dimensions.Width.Float64(), whUnit)
	if err != nil {
		return warehouse.Layout{}, err
	}
	height, err := ToCentimeters(cfg.Dimensions.Height.Float64(), whUnit)
	if err != nil {
		return warehouse.Layout{}, err
	}

	blockGap, err := ToCentimeters(cfg.BlockGap.Float64(), unitOr(cfg.BlockGapUnit, warehouse.DefaultUnit))
	if err != nil {
		return warehouse.Layout{}, err
	}

	blockWidth, startX, err := Split("block width", width, cfg.Blocks, blockGap)
	if err != nil {
		return warehouse.Layout{}, err
	}

	blocks := make([]warehouse.Block, 0, cfg.Blocks)
	for i, bc := range cfg.BlockConfigs {
		env := envelope{
			X:      startX + float64(i)*(blockWidth+blockGap),
			Width:  blockWidth,
			Length: length,
			Height: height,
		}

		racks, err := resolveBlock(i, env, bc)
		if err != nil {
			return warehouse.Layout{}, err
		}

		// The block cuboid spans the full warehouse length and height;
		// blocks are tiled along the width axis only.
		blocks = append(blocks, warehouse.Block{
			ID:         fmt.Sprintf("block_%d", i+1),
			Position:   warehouse.Point{X: env.X, Y: length / 2, Z: height / 2},
			Dimensions: warehouse.Extent{Length: length, Width: blockWidth, Height: height},
			Racks:      racks,
		})
	}

	return warehouse.Layout{Blocks: blocks}, nil
}
