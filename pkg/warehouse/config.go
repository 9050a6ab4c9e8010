package warehouse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/palletlab/warevis/pkg/errors"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultUnit is the unit assumed when a config omits one.
	DefaultUnit = "cm"

	// DefaultPalletColor is the fallback pallet color (saddle brown).
	DefaultPalletColor = "#8B4513"
)

// =============================================================================
// Configuration Schema
// =============================================================================

// Dimensions is a physical extent plus the unit it is expressed in.
// Values are converted to centimeters exactly once by the layout engine and
// never mutated afterwards.
type Dimensions struct {
	Length Quantity `json:"length" bson:"length"`
	Width  Quantity `json:"width" bson:"width"`
	Height Quantity `json:"height" bson:"height"`
	Unit   string   `json:"unit,omitempty" bson:"unit,omitempty"`
}

// CellIndex identifies a rack-floor cell by 1-based (floor, row, column)
// indices. It is used both for pallet placement targets and for the indices
// a resolved rack-floor entry carries.
type CellIndex struct {
	Floor int `json:"floor" bson:"floor"`
	Row   int `json:"row" bson:"row"`
	Col   int `json:"col" bson:"col"`
}

// PalletConfig describes a placed pallet: its physical dimensions, weight,
// display color, and the rack cell it occupies. Multiple pallets may target
// the same cell; the resolver attaches all matches without conflict checks.
type PalletConfig struct {
	Type     string    `json:"type" bson:"type"`
	Weight   Quantity  `json:"weight,omitempty" bson:"weight,omitempty"`
	Length   Quantity  `json:"length" bson:"length"`
	Width    Quantity  `json:"width" bson:"width"`
	Height   Quantity  `json:"height" bson:"height"`
	Unit     string    `json:"unit,omitempty" bson:"unit,omitempty"`
	Color    string    `json:"color,omitempty" bson:"color,omitempty"`
	Position CellIndex `json:"position" bson:"position"`
}

// RackConfig describes the rack grid of one block. Racks are distributed
// across rows: racks_per_row = ceil(num_racks / num_rows). CustomGaps lists
// inter-rack gaps indexed by column slot, so every row shares the same gap
// pattern; missing entries contribute 0. When CustomGaps is empty,
// GapBetweenRacks applies uniformly to every inter-rack slot.
type RackConfig struct {
	Floors int `json:"num_floors" bson:"num_floors"`
	Rows   int `json:"num_rows" bson:"num_rows"`
	Racks  int `json:"num_racks" bson:"num_racks"`

	GapBetweenRacks Quantity   `json:"gap_between_racks,omitempty" bson:"gap_between_racks,omitempty"`
	CustomGaps      []Quantity `json:"custom_gaps,omitempty" bson:"custom_gaps,omitempty"`
	GapUnit         string     `json:"gap_unit,omitempty" bson:"gap_unit,omitempty"`

	// Wall gaps between the block envelope and the first/last racks.
	GapFront    Quantity `json:"gap_front" bson:"gap_front"`
	GapBack     Quantity `json:"gap_back" bson:"gap_back"`
	GapLeft     Quantity `json:"gap_left" bson:"gap_left"`
	GapRight    Quantity `json:"gap_right" bson:"gap_right"`
	WallGapUnit string   `json:"wall_gap_unit,omitempty" bson:"wall_gap_unit,omitempty"`
}

// RacksPerRow returns ceil(Racks / Rows), or 0 when Rows is 0.
func (r RackConfig) RacksPerRow() int {
	if r.Rows <= 0 {
		return 0
	}
	return (r.Racks + r.Rows - 1) / r.Rows
}

// BlockConfig describes one vertical block: its rack grid and the pallets
// placed inside it. A BlockConfig is owned exclusively by its Config and is
// never shared between warehouses.
type BlockConfig struct {
	Index   int            `json:"block_index" bson:"block_index"`
	Rack    RackConfig     `json:"rack_config" bson:"rack_config"`
	Pallets []PalletConfig `json:"pallet_configs,omitempty" bson:"pallet_configs,omitempty"`
}

// Config is the complete warehouse configuration: the envelope, the block
// count and gap, and one BlockConfig per block.
type Config struct {
	ID           string        `json:"id" bson:"_id"`
	Dimensions   Dimensions    `json:"warehouse_dimensions" bson:"warehouse_dimensions"`
	Blocks       int           `json:"num_blocks" bson:"num_blocks"`
	BlockGap     Quantity      `json:"block_gap,omitempty" bson:"block_gap,omitempty"`
	BlockGapUnit string        `json:"block_gap_unit,omitempty" bson:"block_gap_unit,omitempty"`
	BlockConfigs []BlockConfig `json:"block_configs" bson:"block_configs"`
}

// =============================================================================
// Defaults & Validation
// =============================================================================

// ApplyDefaults fills omitted units and pallet colors in place.
func (c *Config) ApplyDefaults() {
	if c.Dimensions.Unit == "" {
		c.Dimensions.Unit = DefaultUnit
	}
	if c.BlockGapUnit == "" {
		c.BlockGapUnit = DefaultUnit
	}
	for i := range c.BlockConfigs {
		b := &c.BlockConfigs[i]
		if b.Rack.GapUnit == "" {
			b.Rack.GapUnit = DefaultUnit
		}
		if b.Rack.WallGapUnit == "" {
			b.Rack.WallGapUnit = DefaultUnit
		}
		for j := range b.Pallets {
			p := &b.Pallets[j]
			if p.Unit == "" {
				p.Unit = DefaultUnit
			}
			if p.Color == "" {
				p.Color = DefaultPalletColor
			}
		}
	}
}

// Validate checks the configuration for structural mismatches. It returns a
// MALFORMED_CONFIG error for the first problem found, or nil. Geometric
// feasibility (whether racks actually fit) is the layout engine's concern,
// not Validate's.
func (c *Config) Validate() error {
	if c.Blocks < 1 {
		return errors.New(errors.ErrCodeMalformedConfig, "num_blocks must be at least 1, got %d", c.Blocks)
	}
	if len(c.BlockConfigs) != c.Blocks {
		return errors.New(errors.ErrCodeMalformedConfig,
			"num_blocks is %d but %d block configs were supplied", c.Blocks, len(c.BlockConfigs))
	}

	for i, b := range c.BlockConfigs {
		if err := validateBlock(i, b); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(i int, b BlockConfig) error {
	r := b.Rack
	if r.Racks < 0 {
		return errors.New(errors.ErrCodeMalformedConfig, "block %d: num_racks cannot be negative", i)
	}
	if r.Rows <= 0 && r.Racks > 0 {
		// Guard the racks_per_row division; zero rows silently dropping all
		// racks would be a lie, not a layout.
		return errors.New(errors.ErrCodeMalformedConfig,
			"block %d: num_rows is %d but num_racks is %d", i, r.Rows, r.Racks)
	}
	if r.Floors <= 0 && r.Racks > 0 {
		return errors.New(errors.ErrCodeMalformedConfig,
			"block %d: num_floors must be at least 1, got %d", i, r.Floors)
	}

	perRow := r.RacksPerRow()
	for j, p := range b.Pallets {
		pos := p.Position
		if pos.Floor < 1 || pos.Row < 1 || pos.Col < 1 {
			return errors.New(errors.ErrCodeMalformedConfig,
				"block %d: pallet %d position indices must be 1-based positive, got (%d,%d,%d)",
				i, j, pos.Floor, pos.Row, pos.Col)
		}
		if pos.Floor > r.Floors || pos.Row > r.Rows || pos.Col > perRow {
			return errors.New(errors.ErrCodeMalformedConfig,
				"block %d: pallet %d position (%d,%d,%d) exceeds grid bounds (%d floors, %d rows, %d racks per row)",
				i, j, pos.Floor, pos.Row, pos.Col, r.Floors, r.Rows, perRow)
		}
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalConfig serializes a Config to pretty-printed JSON bytes.
func MarshalConfig(c Config) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// UnmarshalConfig deserializes JSON bytes into a Config.
func UnmarshalConfig(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes a Config to a JSON file.
func WriteConfigFile(c Config, path string) error {
	data, err := MarshalConfig(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadConfigFile reads a Config from a JSON file.
func ReadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalConfig(data)
}
