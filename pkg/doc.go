// Package pkg provides the core libraries for Warevis warehouse layout
// generation.
//
// # Overview
//
// Warevis computes deterministic 3D layouts for warehouses: given a warehouse
// envelope, per-block rack grids, gaps, and placed pallets, it produces
// absolute positions and dimensions for every block, rack-floor cell, and
// pallet. The pkg directory is organized into:
//
//  1. [warehouse] - Configuration and layout document types (serialization)
//  2. [layout] - The layout engine (unit normalization, space allocation,
//     placement resolution)
//  3. [store] - Key-value storage backends keyed by warehouse id (memory,
//     file, Redis, MongoDB)
//  4. [pipeline] - Orchestration (validate → compute → persist) shared by
//     CLI and API
//  5. [render] - Artifact generation (SVG floor plan, JSON)
//
// # Architecture
//
// The typical data flow through Warevis:
//
//	WarehouseConfig (JSON)
//	         ↓
//	    [warehouse] package (strict schema validation)
//	         ↓
//	    [layout] package (normalize units → allocate space → resolve placements)
//	         ↓
//	    [pipeline] package (persist via [store], report stats)
//	         ↓
//	    Layout document / SVG / JSON output
//
// # Quick Start
//
// Compute a layout from a configuration:
//
//	import (
//	    "github.com/palletlab/warevis/pkg/layout"
//	    "github.com/palletlab/warevis/pkg/warehouse"
//	)
//
//	cfg, _ := warehouse.ReadConfigFile("warehouse.json")
//	doc, err := layout.CreateLayout(cfg)
//	if err != nil {
//	    // UNSUPPORTED_UNIT, INSUFFICIENT_SPACE, or MALFORMED_CONFIG
//	}
//	_ = warehouse.WriteLayoutFile(doc, "warehouse.layout.json")
//
// The engine is a pure function of its input: no I/O, no shared state, safe
// for concurrent callers.
//
// [warehouse]: https://pkg.go.dev/github.com/palletlab/warevis/pkg/warehouse
// [layout]: https://pkg.go.dev/github.com/palletlab/warevis/pkg/layout
// [store]: https://pkg.go.dev/github.com/palletlab/warevis/pkg/store
// [pipeline]: https://pkg.go.dev/github.com/palletlab/warevis/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/palletlab/warevis/pkg/render
package pkg
