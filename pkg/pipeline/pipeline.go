// Package pipeline provides the core warehouse pipeline for warevis.
//
// This package implements the complete validate → layout → render flow that
// can be used by CLI, API, and dashboard components. By centralizing this
// logic, every entry point resolves the exact same geometry for the same
// configuration.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: structural checks on the warehouse configuration
//  2. Layout: resolve the configuration into absolute 3D geometry
//  3. Render: generate output artifacts (SVG floor plan, JSON)
//
// Validation without persistence reuses the same stages, so a configuration
// that validates cleanly is guaranteed to create cleanly.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(st, logger)
//	opts := pipeline.Options{
//	    Config:  cfg,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Create(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/palletlab/warevis/pkg/errors"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// Format constants for output artifacts.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// DefaultFloor is the floor rendered into the SVG plan when none is chosen.
const DefaultFloor = 1

// Options configures one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Config is the warehouse configuration to resolve. If Config.ID is
	// empty, a fresh identifier is assigned during validation.
	Config warehouse.Config `json:"config"`

	// Formats selects the artifacts to render. Defaults to none; the layout
	// itself is always produced.
	Formats []string `json:"formats,omitempty"`

	// Floor selects which floor the SVG plan shows (1-based).
	Floor int `json:"floor,omitempty"`

	// Labels draws block and rack identifiers into the SVG plan.
	Labels bool `json:"labels,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID is the warehouse identifier the run resolved or assigned.
	ID string

	// Config is the configuration after defaults were applied.
	Config warehouse.Config

	// Layout is the resolved geometry.
	Layout warehouse.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount  int
	RackCount   int
	PalletCount int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// Validation describes the outcome of a dry run. Invalid configurations are
// a result, not an error: only infrastructure failures surface as errors.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks option fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Floor == 0 {
		o.Floor = DefaultFloor
	}
	if o.Floor < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "floor must be positive, got %d", o.Floor)
	}
	return nil
}
